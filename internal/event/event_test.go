package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersOnly(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(LevelUp, b)

	d.Dispatch(Event{Type: EnemyKilled, Data: 3})
	assert.Len(t, a.got, 1)
	assert.Equal(t, 3, a.got[0].Data)
	assert.Empty(t, b.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(LevelUp, a)
	d.Unsubscribe(LevelUp, a)
	d.Dispatch(Event{Type: LevelUp})
	assert.Empty(t, a.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(PlayerDied, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: PlayerDied})
	assert.Equal(t, 1, calls)
}
