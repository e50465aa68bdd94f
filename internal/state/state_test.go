package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"karai-survival/internal/app"
)

type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Enter()                    { *s.log = append(*s.log, "enter "+s.name) }
func (s *traceState) Update(deltaTime float64)  { *s.log = append(*s.log, "update "+s.name) }
func (s *traceState) Draw(screen *ebiten.Image) {}
func (s *traceState) Exit()                     { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // без состояния ничего не происходит

	a := &traceState{name: "a", log: &log}
	b := &traceState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.SetState(nil)
	sm.Update(0.1)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, log)
	assert.Nil(t, sm.Current())
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(app.Summary{SurvivalTime: 125, Level: 7, Kills: 42, DamageDealt: 1234.4})
	assert.Len(t, lines, 7)
	assert.Equal(t, "Time survived  02:05", lines[0])
	assert.Contains(t, lines[2], "42")
	assert.Contains(t, lines[3], "1234")
}
