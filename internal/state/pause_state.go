// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/config"
	"karai-survival/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает забег и рисует его под полупрозрачной плашкой.
type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState State
}

func NewPauseState(sm *StateMachine, ctx *Context, prev State) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previousState: prev}
}

func (s *PauseState) Enter() {
	s.ctx.Game.SetPaused(true)
	s.ctx.HUD.PauseButton().Toggle()
	if s.ctx.Music != nil {
		s.ctx.Music.PauseMusic()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := anyJustPressed(ebiten.KeyP, ebiten.KeyEscape, ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.ctx.HUD.PauseButton().Contains(x, y)
	}
	if anyJustPressed(ebiten.KeyQ) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
		return
	}
	if unpause {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	ui.DrawTextOutlined(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2-40, 4, config.TextLightColor, config.TextDarkColor, ui.AlignCenter)
	ui.DrawText(screen, "P: resume   Q: menu", config.ScreenWidth/2, config.ScreenHeight/2+30, 1.5, config.TextLightColor, ui.AlignCenter)
}

func (s *PauseState) Exit() {
	s.ctx.Game.SetPaused(false)
	s.ctx.HUD.PauseButton().Toggle()
	if s.ctx.Music != nil {
		s.ctx.Music.ResumeMusic()
	}
}
