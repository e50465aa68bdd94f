// internal/state/upgrade_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"karai-survival/internal/ui"
)

// UpgradeState - выбор улучшения после повышения уровня. Забег стоит.
type UpgradeState struct {
	sm            *StateMachine
	ctx           *Context
	previousState State
	panel         *ui.UpgradePanel
}

func NewUpgradeState(sm *StateMachine, ctx *Context, prev State) *UpgradeState {
	return &UpgradeState{sm: sm, ctx: ctx, previousState: prev, panel: ui.NewUpgradePanel()}
}

func (s *UpgradeState) Enter() {}

func (s *UpgradeState) Update(deltaTime float64) {
	game := s.ctx.Game
	choices := game.UpgradeChoices()
	rects := ui.CardRects(len(choices))

	x, y := ebiten.CursorPosition()
	s.panel.Hover = ui.CardAt(rects, x, y)

	pick := choiceKey(len(choices))
	if pick < 0 && s.panel.Hover >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pick = s.panel.Hover
	}
	if pick < 0 {
		return
	}
	game.ChooseUpgrade(pick)
	if !game.AwaitingUpgrade() {
		s.sm.SetState(s.previousState)
	}
}

func (s *UpgradeState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.panel.Draw(screen, s.ctx.Game.Player.Level, s.ctx.Game.UpgradeChoices())
}

func (s *UpgradeState) Exit() {}
