// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"karai-survival/internal/app"
	"karai-survival/internal/render"
	"karai-survival/internal/ui"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// MusicPlayer - управление фоновой музыкой при паузе.
type MusicPlayer interface {
	PauseMusic()
	ResumeMusic()
}

// Context - общие ресурсы, которые состояния передают друг другу.
type Context struct {
	Game   *app.Game
	World  *render.WorldRenderer
	HUD    *ui.HUD
	Music  MusicPlayer
	Logger zerolog.Logger
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
