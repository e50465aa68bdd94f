// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager проигрывает процедурные звуки и фоновую музыку через общий микшер.
// Если звуковое устройство недоступно, все методы молча ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicName   string
	initialized bool
	muted       bool
	logger      zerolog.Logger
}

func NewSoundManager(logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize открывает звуковое устройство. Ошибка не фатальна: игра идёт без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled - будет ли что-то слышно.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// SetMuted глушит все звуки, включая музыку.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if sm.music != nil && sm.initialized {
		speaker.Lock()
		sm.music.Paused = muted
		speaker.Unlock()
	}
}

// PlaySound проигрывает звук один раз с громкостью volume (1 - исходная).
func (sm *SoundManager) PlaySound(name string, volume float64) {
	factory, ok := sounds[name]
	if !ok {
		sm.logger.Debug().Str("sound", name).Msg("unknown sound")
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(factory(sampleRate), volume))
	speaker.Unlock()
}

// PlayMusic запускает фоновую музыку. Та же мелодия не перезапускается.
func (sm *SoundManager) PlayMusic(name string, volume float64) {
	factory, ok := music[name]
	if !ok {
		sm.logger.Debug().Str("music", name).Msg("unknown music")
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		if sm.musicName == name {
			sm.music.Paused = sm.muted
			return
		}
		sm.music.Streamer = nil
	}
	sm.music = &beep.Ctrl{Streamer: withVolume(factory(sampleRate), volume), Paused: sm.muted}
	sm.musicName = name
	sm.mixer.Add(sm.music)
}

// StopMusic останавливает музыку совсем.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.music == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	// Ctrl без потока заканчивается и выпадает из микшера
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
	sm.musicName = ""
}

func (sm *SoundManager) PauseMusic()  { sm.setMusicPaused(true) }
func (sm *SoundManager) ResumeMusic() { sm.setMusicPaused(false) }

func (sm *SoundManager) setMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.music == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.music.Paused = paused || sm.muted
	speaker.Unlock()
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.music = nil
	sm.musicName = ""
	sm.initialized = false
}

// withVolume масштабирует амплитуду потока в volume раз.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}
}
