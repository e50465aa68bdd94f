package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karai-survival/internal/camera"
	"karai-survival/internal/defs"
	"karai-survival/internal/types"
)

func TestViewportCell(t *testing.T) {
	cam := camera.New(1280, 720, 6400, 6400, 5)
	cam.CenterOn(3200, 3200)
	v := viewport{cols: 128, rows: 36}

	x, y, ok := v.cell(cam, types.Vec2{X: 3200, Y: 3200})
	assert.True(t, ok)
	assert.Equal(t, 64, x)
	assert.Equal(t, 18+hudRows, y)

	_, _, ok = v.cell(cam, types.Vec2{X: 100, Y: 3200})
	assert.False(t, ok)
}

func TestEnemyGlyph(t *testing.T) {
	assert.Equal(t, 'c', enemyGlyph(defs.EnemyDefinition{ID: "CARPINCHO"}))
	assert.Equal(t, 'W', enemyGlyph(defs.EnemyDefinition{ID: "AGUARA_GUAZU", Boss: true}))
	assert.Equal(t, '?', enemyGlyph(defs.EnemyDefinition{}))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}
