package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeldKeysExpire(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(1000, 0)
	h.press(dirRight, t0)

	s := h.snapshot(t0.Add(100 * time.Millisecond))
	assert.True(t, s.Right)
	assert.False(t, s.Left)

	s = h.snapshot(t0.Add(holdWindow + time.Millisecond))
	assert.False(t, s.Right)
}

func TestOppositeDirectionReleases(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(1000, 0)
	h.press(dirUp, t0)
	h.press(dirDown, t0.Add(10*time.Millisecond))

	s := h.snapshot(t0.Add(20 * time.Millisecond))
	assert.True(t, s.Down)
	assert.False(t, s.Up)
}

func TestTriggerFiresOnce(t *testing.T) {
	var h heldKeys
	now := time.Unix(1000, 0)
	h.pressTrigger()
	assert.True(t, h.snapshot(now).Trigger)
	assert.False(t, h.snapshot(now).Trigger)
}
