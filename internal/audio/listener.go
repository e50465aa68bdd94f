// internal/audio/listener.go
package audio

import "karai-survival/internal/event"

// Player - то, что умеет проигрывать звуки. Реализуется SoundManager.
type Player interface {
	PlaySound(name string, volume float64)
	PlayMusic(name string, volume float64)
	StopMusic()
}

// EventListener озвучивает игровые события.
type EventListener struct {
	player Player
}

func NewEventListener(p Player) *EventListener {
	return &EventListener{player: p}
}

// Attach подписывает слушатель на все озвучиваемые события.
func (l *EventListener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l,
		event.EnemyKilled,
		event.EnemyHit,
		event.PickupCollected,
		event.PlayerDamaged,
		event.PlayerDied,
		event.LevelUp,
		event.WeaponFired,
		event.BossWaveSpawned,
		event.UpgradeChosen,
		event.GameStarted,
	)
}

func (l *EventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyHit:
		l.player.PlaySound(SoundHit, 0.3)
	case event.EnemyKilled:
		l.player.PlaySound(SoundEnemyDeath, 0.4)
	case event.PickupCollected:
		if data, ok := e.Data.(event.PickupData); ok && data.Health {
			l.player.PlaySound(SoundHealth, 0.6)
			return
		}
		l.player.PlaySound(SoundXPCollect, 0.3)
	case event.PlayerDamaged:
		l.player.PlaySound(SoundPlayerHurt, 0.7)
	case event.LevelUp:
		l.player.PlaySound(SoundLevelUp, 0.8)
	case event.WeaponFired:
		if data, ok := e.Data.(event.WeaponData); ok {
			name := SoundWeaponPrefix + data.WeaponID
			if HasSound(name) {
				l.player.PlaySound(name, 0.4)
			}
		}
	case event.BossWaveSpawned:
		l.player.PlaySound(SoundBossWave, 1)
	case event.UpgradeChosen:
		l.player.PlaySound(SoundUpgrade, 0.6)
	case event.GameStarted:
		l.player.PlayMusic(MusicTheme, 0.3)
	case event.PlayerDied:
		l.player.StopMusic()
		l.player.PlaySound(SoundGameOver, 1)
	}
}
