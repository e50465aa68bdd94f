// internal/defs/waves.go
package defs

// Phase names of the wave cycle.
const (
	PhaseCalm  = "CALM"
	PhaseHorde = "HORDE"
	PhaseRest  = "REST"
)

// PhaseDefinition describes one phase of the CALM -> HORDE -> REST cycle.
type PhaseDefinition struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	// SpawnRate divides the base spawn interval; 0 suspends spawning.
	SpawnRate       float64 `yaml:"spawn_rate"`
	CountMultiplier float64 `yaml:"count_multiplier"`
	// WeightBoost applies each enemy's horde weight during this phase.
	WeightBoost bool `yaml:"weight_boost"`
}

// DifficultyDefinition scales enemy stats per full minute of play.
type DifficultyDefinition struct {
	HealthPerMinute float64 `yaml:"health_per_minute"`
	DamagePerMinute float64 `yaml:"damage_per_minute"`
	SpeedPerMinute  float64 `yaml:"speed_per_minute"`
	MaxMultiplier   float64 `yaml:"max_multiplier"`
}

// SpawnDefinition holds the long-term spawn schedule.
type SpawnDefinition struct {
	BaseInterval     float64 `yaml:"base_interval"`
	IntervalStep     float64 `yaml:"interval_step"` // subtracted per full minute
	MinInterval      float64 `yaml:"min_interval"`
	BaseCount        int     `yaml:"base_count"`
	CountStepTime    float64 `yaml:"count_step_time"` // +1 enemy per spawn every N seconds
	BossWaveInterval float64 `yaml:"boss_wave_interval"`
	BossWaveEnemy    string  `yaml:"boss_wave_enemy"`
	BossWaveMinion   string  `yaml:"boss_wave_minion"`

	Difficulty DifficultyDefinition `yaml:"difficulty"`
}

// WaveConfig is the on-disk shape of waves.yaml.
type WaveConfig struct {
	Phases   []PhaseDefinition `yaml:"phases"`
	Spawning SpawnDefinition   `yaml:"spawning"`
}
