package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColorKeepsAlpha(t *testing.T) {
	c := DarkenColor(color.RGBA{200, 100, 50, 180})
	assert.Equal(t, color.RGBA{100, 50, 25, 180}, c)
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, c, WithAlpha(c, 1.5))
	assert.Equal(t, color.RGBA{}, WithAlpha(c, 0))
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, WithAlpha(c, 0.5))
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, a, LerpColor(a, b, -1))
	assert.Equal(t, b, LerpColor(a, b, 2))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, LerpColor(a, b, 0.5))
}
