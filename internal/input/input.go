// internal/input/input.go
package input

import "karai-survival/internal/types"

// Snapshot - состояние ввода за один кадр: какие клавиши движения зажаты
// и нажата ли кнопка ручной атаки. Заполняется фронтендом (ebiten, tcell).
type Snapshot struct {
	Up, Down, Left, Right bool
	Trigger               bool
}

// Direction - ненормализованное направление движения; нормализует Entity.Move.
func (s Snapshot) Direction() types.Vec2 {
	var d types.Vec2
	if s.Up {
		d.Y--
	}
	if s.Down {
		d.Y++
	}
	if s.Left {
		d.X--
	}
	if s.Right {
		d.X++
	}
	return d
}
