// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState - идёт забег.
type GameState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {
	g.ctx.HUD.PauseButton().IsPaused = false
}

func (g *GameState) Update(deltaTime float64) {
	if anyJustPressed(ebiten.KeyP, ebiten.KeyEscape, ebiten.KeyF9) || g.pauseClicked() {
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
		return
	}

	game := g.ctx.Game
	game.Update(deltaTime, readInput())

	switch {
	case game.IsOver():
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	case game.AwaitingUpgrade():
		g.sm.SetState(NewUpgradeState(g.sm, g.ctx, g))
	}
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return g.ctx.HUD.PauseButton().Contains(x, y)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.ctx.World.Draw(screen, g.ctx.Game)
	g.ctx.HUD.Draw(screen, g.ctx.Game)
}

func (g *GameState) Exit() {}
