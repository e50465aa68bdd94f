package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseWeightedNeverPicksZeroWeight(t *testing.T) {
	rng := NewPRNGService(42)
	weights := []float64{10, 7, 4, 0}
	for i := 0; i < 10000; i++ {
		assert.NotEqual(t, 3, rng.ChooseWeighted(weights))
	}
}

func TestChooseWeightedFrequencies(t *testing.T) {
	rng := NewPRNGService(7)
	weights := []float64{10, 7, 4, 2}
	counts := make([]int, len(weights))
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[rng.ChooseWeighted(weights)]++
	}
	for i, w := range weights {
		assert.InDelta(t, w/23.0, float64(counts[i])/draws, 0.01, "index %d", i)
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	rng := NewPRNGService(1)
	assert.Equal(t, -1, rng.ChooseWeighted(nil))
	assert.Equal(t, -1, rng.ChooseWeighted([]float64{0, -3}))
}

func TestSampleWithoutReplacement(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		got := rng.Sample(7, 3)
		require.Len(t, got, 3)
		seen := map[int]bool{}
		for _, idx := range got {
			assert.False(t, seen[idx])
			assert.True(t, idx >= 0 && idx < 7)
			seen[idx] = true
		}
	}
	assert.Len(t, rng.Sample(2, 3), 2)
}

func TestSeedIsReproducible(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-3, 0, 9))
	assert.Equal(t, 9, ClampInt(12, 0, 9))
	assert.Equal(t, 4, ClampInt(4, 0, 9))
	assert.InDelta(t, 1.5, Clamp(7, -1.5, 1.5), 1e-12)
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-12)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-7*math.Pi/2), 1e-12)
	assert.InDelta(t, 1.0, NormalizeAngle(1), 1e-12)
}
