// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// ClampInt ограничивает v отрезком [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
