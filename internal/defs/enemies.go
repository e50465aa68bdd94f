// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Health      float64 `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	Damage      float64 `yaml:"damage"`
	XP          int     `yaml:"xp"`
	SpawnWeight float64 `yaml:"spawn_weight"`
	// UnlockTime gates the type: its weight is 0 before this many seconds,
	// then ramps as weight * elapsed / UnlockTime.
	UnlockTime float64 `yaml:"unlock_time"`
	// HordeWeight multiplies the spawn weight during the HORDE phase (0 means 1).
	HordeWeight float64 `yaml:"horde_weight"`
	Boss        bool    `yaml:"boss"`
	Sprite      string  `yaml:"sprite"`
	Visuals     Visuals `yaml:"visuals"`
}

// WeightAt returns the spawn weight of the type at the given game time.
func (d EnemyDefinition) WeightAt(elapsed float64, horde bool) float64 {
	w := d.SpawnWeight
	if w <= 0 {
		return 0
	}
	if d.UnlockTime > 0 {
		if elapsed < d.UnlockTime {
			return 0
		}
		w *= elapsed / d.UnlockTime
	}
	if horde && d.HordeWeight > 0 {
		w *= d.HordeWeight
	}
	return w
}
