// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"karai-survival/internal/config"
	"karai-survival/internal/ui"
)

// MenuState - титульный экран.
type MenuState struct {
	sm  *StateMachine
	ctx *Context
	t   float64
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.t += deltaTime
	if anyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.ctx.Game.Restart()
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawTextOutlined(screen, "KARAI", config.ScreenWidth/2, 220, 6, config.PlayerColor, config.TextDarkColor, ui.AlignCenter)
	ui.DrawText(screen, "survive the monte", config.ScreenWidth/2, 320, 2, config.TextLightColor, ui.AlignCenter)
	if int(m.t*2)%2 == 0 {
		ui.DrawText(screen, "press SPACE to start", config.ScreenWidth/2, 460, 2, config.CooldownBarColor, ui.AlignCenter)
	}
	ui.DrawText(screen, "WASD / arrows: move   SPACE: azada   P: pause", config.ScreenWidth/2, 560, 1, config.TextLightColor, ui.AlignCenter)
}

func (m *MenuState) Exit() {}
