// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"karai-survival/internal/input"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput снимает состояние клавиатуры: WASD или стрелки, пробел - ручная атака.
func readInput() input.Snapshot {
	return input.Snapshot{
		Up:      anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:    anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Trigger: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// choiceKey - индекс выбранной цифрой карточки (1..n) или -1.
func choiceKey(n int) int {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	for i := 0; i < n && i < len(keys); i++ {
		if inpututil.IsKeyJustPressed(keys[i]) {
			return i
		}
	}
	return -1
}
