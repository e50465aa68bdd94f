// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	enemiesFile     = "enemies.yaml"
	weaponsFile     = "weapons.yaml"
	progressionFile = "progression.yaml"
	wavesFile       = "waves.yaml"
)

// Library is the immutable set of balance tables loaded once at startup
// and shared by pointer with every system that needs it.
type Library struct {
	Enemies     map[string]EnemyDefinition
	EnemyOrder  []string
	Weapons     map[string]WeaponDefinition
	WeaponOrder []string
	Progression Progression
	Phases      []PhaseDefinition
	Spawning    SpawnDefinition
}

// LoadDefaultLibrary loads the tables bundled into the binary.
func LoadDefaultLibrary() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return LoadLibrary(sub)
}

// LoadLibraryDir loads the tables from a directory on disk.
func LoadLibraryDir(dir string) (*Library, error) {
	return LoadLibrary(os.DirFS(dir))
}

// LoadLibrary reads every definition file from fsys and validates the result.
func LoadLibrary(fsys fs.FS) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := decodeFile(fsys, enemiesFile, &enemyDefs); err != nil {
		return nil, err
	}
	var weaponDefs []WeaponDefinition
	if err := decodeFile(fsys, weaponsFile, &weaponDefs); err != nil {
		return nil, err
	}
	var progression Progression
	if err := decodeFile(fsys, progressionFile, &progression); err != nil {
		return nil, err
	}
	var waves WaveConfig
	if err := decodeFile(fsys, wavesFile, &waves); err != nil {
		return nil, err
	}

	lib := &Library{
		Enemies:     make(map[string]EnemyDefinition, len(enemyDefs)),
		Weapons:     make(map[string]WeaponDefinition, len(weaponDefs)),
		Progression: progression,
		Phases:      waves.Phases,
		Spawning:    waves.Spawning,
	}
	var dupes []error
	for _, def := range enemyDefs {
		if _, ok := lib.Enemies[def.ID]; ok {
			dupes = append(dupes, fmt.Errorf("duplicate enemy id %q", def.ID))
			continue
		}
		lib.Enemies[def.ID] = def
		lib.EnemyOrder = append(lib.EnemyOrder, def.ID)
	}
	for _, def := range weaponDefs {
		if def.Trigger == "" {
			def.Trigger = TriggerAuto
		}
		if _, ok := lib.Weapons[def.ID]; ok {
			dupes = append(dupes, fmt.Errorf("duplicate weapon id %q", def.ID))
			continue
		}
		lib.Weapons[def.ID] = def
		lib.WeaponOrder = append(lib.WeaponOrder, def.ID)
	}
	if err := errors.Join(append(dupes, lib.Validate())...); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return lib, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Validate reports every inconsistency in the tables at once.
func (l *Library) Validate() error {
	var errs []error
	if len(l.Enemies) == 0 {
		errs = append(errs, errors.New("no enemy definitions"))
	}
	for _, id := range l.EnemyOrder {
		def := l.Enemies[id]
		if def.Health <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: health must be positive", id))
		}
		if def.SpawnWeight < 0 || def.HordeWeight < 0 {
			errs = append(errs, fmt.Errorf("enemy %q: negative weight", id))
		}
	}
	if len(l.Weapons) == 0 {
		errs = append(errs, errors.New("no weapon definitions"))
	}
	manual := 0
	for _, id := range l.WeaponOrder {
		def := l.Weapons[id]
		switch def.Archetype {
		case ArchetypeMelee, ArchetypeProjectile, ArchetypeArea, ArchetypeBuff:
		default:
			errs = append(errs, fmt.Errorf("weapon %q: unknown archetype %q", id, def.Archetype))
		}
		switch def.Trigger {
		case TriggerAuto:
		case TriggerManual:
			manual++
		default:
			errs = append(errs, fmt.Errorf("weapon %q: unknown trigger %q", id, def.Trigger))
		}
		if len(def.Levels) == 0 {
			errs = append(errs, fmt.Errorf("weapon %q: no levels", id))
		}
		if def.Cooldown <= 0 {
			errs = append(errs, fmt.Errorf("weapon %q: cooldown must be positive", id))
		}
	}
	if manual > 1 {
		errs = append(errs, fmt.Errorf("%d manual weapons defined, at most one allowed", manual))
	}
	if len(l.Progression.XPTable) == 0 {
		errs = append(errs, errors.New("empty xp table"))
	}
	if l.Progression.Growth < 1 {
		errs = append(errs, errors.New("xp growth must be >= 1"))
	}
	if _, ok := l.Weapons[l.Progression.StartingWeapon]; !ok {
		errs = append(errs, fmt.Errorf("starting weapon %q is not defined", l.Progression.StartingWeapon))
	}
	if len(l.Phases) == 0 {
		errs = append(errs, errors.New("no wave phases"))
	}
	for _, p := range l.Phases {
		if p.Duration <= 0 {
			errs = append(errs, fmt.Errorf("phase %q: duration must be positive", p.Name))
		}
		if p.SpawnRate < 0 || p.CountMultiplier < 0 {
			errs = append(errs, fmt.Errorf("phase %q: negative multiplier", p.Name))
		}
	}
	s := l.Spawning
	if s.BaseInterval <= 0 || s.MinInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if s.BossWaveInterval > 0 {
		for _, id := range []string{s.BossWaveEnemy, s.BossWaveMinion} {
			if _, ok := l.Enemies[id]; !ok {
				errs = append(errs, fmt.Errorf("boss wave enemy %q is not defined", id))
			}
		}
	}
	return errors.Join(errs...)
}
