package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karai-survival/internal/types"
)

func TestGenerationIsDeterministic(t *testing.T) {
	a := New(50, 40, 64, 7)
	b := New(50, 40, 64, 7)
	require.Len(t, a.Tiles, 50*40)
	assert.Equal(t, a.Tiles, b.Tiles)

	c := New(50, 40, 64, 8)
	assert.NotEqual(t, a.Tiles, c.Tiles)
}

func TestMapHasAllKinds(t *testing.T) {
	m := New(100, 100, 64, 42)
	total := 0
	for _, k := range Kinds {
		n := m.Count(k)
		assert.Greater(t, n, 0, "kind %d", k)
		total += n
	}
	assert.Equal(t, 100*100, total)
	assert.Greater(t, m.Count(Grass), m.Count(Dirt))
}

func TestAtOutOfBounds(t *testing.T) {
	m := New(10, 10, 64, 1)
	assert.Equal(t, Grass, m.At(-1, 0))
	assert.Equal(t, Grass, m.At(0, 10))
	assert.False(t, m.InBounds(10, 0))
	assert.True(t, m.InBounds(9, 9))
}

func TestVisibleRangeClamped(t *testing.T) {
	m := New(10, 10, 64, 1)

	x0, y0, x1, y1 := m.VisibleRange(types.Vec2{X: 70, Y: 130}, types.Vec2{X: 200, Y: 260})
	assert.Equal(t, []int{1, 2, 3, 4}, []int{x0, y0, x1, y1})

	x0, y0, x1, y1 = m.VisibleRange(types.Vec2{X: -100, Y: -5}, types.Vec2{X: 5000, Y: 5000})
	assert.Equal(t, []int{0, 0, 9, 9}, []int{x0, y0, x1, y1})
}
