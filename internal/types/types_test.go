package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.Equal(t, Vec2{}, Vec2{3, 4}.DirTo(Vec2{3, 4}))
}

func TestNormalizeUnitLength(t *testing.T) {
	n := Vec2{3, -4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, -0.8, n.Y, 1e-12)
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 5.0, Vec2{1, 1}.Dist(Vec2{4, 5}), 1e-12)
	assert.InDelta(t, math.Sqrt2, Vec2{}.Dist(Vec2{1, 1}), 1e-12)
}
