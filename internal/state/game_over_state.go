// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/app"
	"karai-survival/internal/config"
	"karai-survival/internal/ui"
)

// GameOverState - итоги забега.
type GameOverState struct {
	sm      *StateMachine
	ctx     *Context
	summary app.Summary
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {
	s.summary = s.ctx.Game.Summary()
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case anyJustPressed(ebiten.KeyR, ebiten.KeyEnter, ebiten.KeySpace):
		s.ctx.Game.Restart()
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case anyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

// SummaryLines - строки итогов для экрана конца игры.
func SummaryLines(s app.Summary) []string {
	return []string{
		"Time survived  " + ui.FormatTime(s.SurvivalTime),
		fmt.Sprintf("Level          %d", s.Level),
		fmt.Sprintf("Kills          %d", s.Kills),
		fmt.Sprintf("Damage dealt   %.0f", s.DamageDealt),
		fmt.Sprintf("Damage taken   %.0f", s.DamageTaken),
		fmt.Sprintf("XP collected   %.0f", s.XPCollected),
		fmt.Sprintf("Wave cycle     %d", s.WaveCycle),
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.ctx.World.Draw(screen, s.ctx.Game)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	ui.DrawTextOutlined(screen, "GAME OVER", config.ScreenWidth/2, 120, 5, config.HealthBarColor, config.TextDarkColor, ui.AlignCenter)

	y := 250.0
	for _, line := range SummaryLines(s.summary) {
		ui.DrawText(screen, line, config.ScreenWidth/2-150, y, 2, config.TextLightColor, ui.AlignLeft)
		y += 36
	}
	ui.DrawText(screen, "R: play again   ESC: menu", config.ScreenWidth/2, 560, 1.5, config.CooldownBarColor, ui.AlignCenter)
}

func (s *GameOverState) Exit() {}
