// internal/audio/sounds.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Имена звуков
const (
	SoundHit          = "hit"
	SoundEnemyDeath   = "enemy_death"
	SoundXPCollect    = "xp_collect"
	SoundHealth       = "health_collect"
	SoundLevelUp      = "level_up"
	SoundPlayerHurt   = "player_hurt"
	SoundGameOver     = "game_over"
	SoundBossWave     = "boss_wave"
	SoundUpgrade      = "upgrade"
	SoundWeaponPrefix = "weapon_"

	MusicTheme = "theme"
)

type soundFactory func(rate beep.SampleRate) beep.Streamer

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var sounds = map[string]soundFactory{
	SoundHit: func(r beep.SampleRate) beep.Streamer {
		sine, err := generators.SineTone(r, 880)
		if err != nil {
			return NewTone(WaveSine, 880, 880, ms(50), r)
		}
		return beep.Take(r.N(ms(50)), sine)
	},
	SoundEnemyDeath: func(r beep.SampleRate) beep.Streamer { return NewTone(WaveNoise, 0, 0, ms(180), r) },
	SoundXPCollect:  func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSine, 660, 1320, ms(80), r) },
	SoundHealth:     func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSine, 440, 880, ms(200), r) },
	SoundLevelUp: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			NewTone(WaveSquare, 523, 523, ms(90), r),
			NewTone(WaveSquare, 659, 659, ms(90), r),
			NewTone(WaveSquare, 784, 784, ms(180), r),
		)
	},
	SoundPlayerHurt: func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSaw, 220, 110, ms(150), r) },
	SoundGameOver: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			NewTone(WaveSaw, 392, 392, ms(250), r),
			NewTone(WaveSaw, 311, 311, ms(250), r),
			NewTone(WaveSaw, 196, 98, ms(700), r),
		)
	},
	SoundBossWave: func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSquare, 80, 40, ms(900), r) },
	SoundUpgrade:  func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSine, 880, 1760, ms(120), r) },

	SoundWeaponPrefix + "MACHETE": func(r beep.SampleRate) beep.Streamer { return NewTone(WaveNoise, 0, 0, ms(60), r) },
	SoundWeaponPrefix + "HACHA":   func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSaw, 500, 300, ms(70), r) },
	SoundWeaponPrefix + "AZADA":   func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSquare, 160, 60, ms(250), r) },
	SoundWeaponPrefix + "TERERE":  func(r beep.SampleRate) beep.Streamer { return NewTone(WaveSine, 600, 900, ms(300), r) },
}

var music = map[string]func(rate beep.SampleRate) beep.Streamer{
	MusicTheme: func(r beep.SampleRate) beep.Streamer { return NewDrone(r) },
}

// HasSound - есть ли звук с таким именем.
func HasSound(name string) bool {
	_, ok := sounds[name]
	return ok
}
