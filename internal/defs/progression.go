// internal/defs/progression.go
package defs

import "math"

// Progression holds the experience schedule and player start-up data.
type Progression struct {
	XPTable        []float64 `yaml:"xp_table"`
	Growth         float64   `yaml:"growth"`
	StartingWeapon string    `yaml:"starting_weapon"`
}

// RequiredXP returns the experience needed to leave the given level.
// Levels past the table grow exponentially from its last entry.
func (p Progression) RequiredXP(level int) float64 {
	if len(p.XPTable) == 0 {
		return math.Inf(1)
	}
	if level < 1 {
		level = 1
	}
	if level <= len(p.XPTable) {
		return p.XPTable[level-1]
	}
	last := p.XPTable[len(p.XPTable)-1]
	return last * math.Pow(p.Growth, float64(level-len(p.XPTable)))
}
