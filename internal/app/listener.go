// internal/app/listener.go
package app

import "karai-survival/internal/event"

// Сила тряски камеры
const (
	shakeHit      = 3.0
	shakeDeath    = 7.0
	shakeBoss     = 15.0
	shakeDuration = 0.3
)

// GameEventListener - реакции самой сессии на игровые события.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDamaged:
		l.game.Camera.Shake(shakeHit, shakeDuration)
	case event.PlayerDied:
		l.game.Camera.Shake(shakeDeath, shakeDuration*2)
	case event.BossWaveSpawned:
		l.game.Camera.Shake(shakeBoss, shakeDuration*2)
	}
}
