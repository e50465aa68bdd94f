// internal/defs/weapons.go
package defs

// Archetype is the behavioral category of a weapon's attack.
type Archetype string

const (
	ArchetypeMelee      Archetype = "melee"
	ArchetypeProjectile Archetype = "projectile"
	ArchetypeArea       Archetype = "area"
	ArchetypeBuff       Archetype = "buff"
)

// TriggerMode tells whether a weapon fires on its own or waits for the player.
type TriggerMode string

const (
	TriggerAuto   TriggerMode = "auto"
	TriggerManual TriggerMode = "manual"
)

// WeaponLevel is the stat tuple read by a weapon at one level. Only the
// fields that make sense for the archetype are filled in.
type WeaponLevel struct {
	Damage     float64 `yaml:"damage"`
	Range      float64 `yaml:"range"`
	Radius     float64 `yaml:"radius"`
	Count      int     `yaml:"count"`
	HealPerSec float64 `yaml:"heal_per_sec"`
	Duration   float64 `yaml:"duration"`
	// Cooldown, when positive, replaces the weapon cooldown from this level on.
	Cooldown float64 `yaml:"cooldown"`
}

// WeaponDefinition holds the static data for a weapon type.
type WeaponDefinition struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Archetype   Archetype     `yaml:"archetype"`
	Trigger     TriggerMode   `yaml:"trigger"`
	Cooldown    float64       `yaml:"cooldown"`
	Knockback   float64       `yaml:"knockback"`
	Levels      []WeaponLevel `yaml:"levels"`
	Sprite      string        `yaml:"sprite"`
	Visuals     Visuals       `yaml:"visuals"`
}

// MaxLevel returns the highest level defined for the weapon.
func (d WeaponDefinition) MaxLevel() int {
	return len(d.Levels)
}

// Level returns the stat tuple for a 1-based level, clamped to the defined range.
func (d WeaponDefinition) Level(level int) WeaponLevel {
	if len(d.Levels) == 0 {
		return WeaponLevel{}
	}
	if level < 1 {
		level = 1
	}
	if level > len(d.Levels) {
		level = len(d.Levels)
	}
	return d.Levels[level-1]
}
