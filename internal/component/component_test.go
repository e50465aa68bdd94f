package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karai-survival/internal/types"
)

func TestHealthDamageReportsDeathOnce(t *testing.T) {
	h := NewHealth(30)
	applied, died := h.Damage(50)
	assert.Equal(t, 30.0, applied)
	assert.True(t, died)

	applied, died = h.Damage(10)
	assert.Zero(t, applied)
	assert.False(t, died)
	assert.False(t, h.Alive())
}

func TestHealthHealClampsAtMax(t *testing.T) {
	h := NewHealth(100)
	h.Damage(30)
	assert.Equal(t, 30.0, h.Heal(80))
	assert.Equal(t, 100.0, h.Current)
	assert.Zero(t, h.Heal(-5))
}

func TestTimerClosesAtDuration(t *testing.T) {
	var tm Timer
	tm.Start(0.5)
	assert.False(t, tm.Tick(0.25))
	assert.True(t, tm.Active)
	assert.True(t, tm.Tick(0.25))
	assert.False(t, tm.Active)
	assert.False(t, tm.Tick(1))
}

func TestCooldownCycle(t *testing.T) {
	c := NewCooldown(1.0)
	assert.True(t, c.Ready)
	c.Trigger()
	c.Tick(0.4)
	assert.False(t, c.Ready)
	assert.InDelta(t, 0.4, c.Progress(), 1e-9)
	c.Tick(0.6)
	assert.True(t, c.Ready)
	assert.Equal(t, 1.0, c.Progress())
}

func TestHitboxCenteredOnRoundedPosition(t *testing.T) {
	r := Hitbox(types.Vec2{X: 100.4, Y: 49.6}, 50, 50)
	assert.Equal(t, 75, r.Min.X)
	assert.Equal(t, 25, r.Min.Y)
	assert.Equal(t, 50, r.Dx())
	assert.Equal(t, 50, r.Dy())
}
