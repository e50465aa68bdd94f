package system

import (
	"github.com/rs/zerolog"

	"karai-survival/internal/camera"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/entity"
	"karai-survival/internal/event"
	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

func testLibrary() *defs.Library {
	return &defs.Library{
		Enemies: map[string]defs.EnemyDefinition{
			"CARPINCHO":    {ID: "CARPINCHO", Health: 30, Speed: 80, Damage: 5, XP: 10, SpawnWeight: 10},
			"YACARE":       {ID: "YACARE", Health: 50, Speed: 60, Damage: 8, XP: 15, SpawnWeight: 7, HordeWeight: 1.5},
			"TATU":         {ID: "TATU", Health: 80, Speed: 40, Damage: 12, XP: 25, SpawnWeight: 4, HordeWeight: 2},
			"AGUARA_GUAZU": {ID: "AGUARA_GUAZU", Health: 150, Speed: 100, Damage: 20, XP: 50, SpawnWeight: 2, UnlockTime: 300, Boss: true},
		},
		EnemyOrder: []string{"CARPINCHO", "YACARE", "TATU", "AGUARA_GUAZU"},
		Weapons: map[string]defs.WeaponDefinition{
			"MACHETE": {ID: "MACHETE", Archetype: defs.ArchetypeMelee, Trigger: defs.TriggerAuto, Cooldown: 0.5, Knockback: 100,
				Levels: []defs.WeaponLevel{{Damage: 50, Range: 60}}},
		},
		WeaponOrder: []string{"MACHETE"},
		Progression: defs.Progression{XPTable: []float64{100, 150}, Growth: 1.5, StartingWeapon: "MACHETE"},
		Phases: []defs.PhaseDefinition{
			{Name: defs.PhaseCalm, Duration: 25, SpawnRate: 1, CountMultiplier: 1},
			{Name: defs.PhaseHorde, Duration: 12, SpawnRate: 2.5, CountMultiplier: 2, WeightBoost: true},
			{Name: defs.PhaseRest, Duration: 8, SpawnRate: 0.25, CountMultiplier: 1},
		},
		Spawning: defs.SpawnDefinition{
			BaseInterval: 1, IntervalStep: 0.05, MinInterval: 0.2, BaseCount: 1, CountStepTime: 120,
			Difficulty: defs.DifficultyDefinition{HealthPerMinute: 0.1, DamagePerMinute: 0.05, SpeedPerMinute: 0.03, MaxMultiplier: 3},
		},
	}
}

type fixture struct {
	lib        *defs.Library
	camera     *camera.Camera
	player     *entity.Player
	dispatcher *event.Dispatcher
	spawner    *SpawnSystem
	combat     *CombatSystem
}

func newFixture(lib *defs.Library) *fixture {
	center := types.Vec2{X: config.WorldWidth / 2, Y: config.WorldHeight / 2}
	cam := camera.New(config.ScreenWidth, config.ScreenHeight, config.WorldWidth, config.WorldHeight, config.CameraFollowRate)
	cam.CenterOn(center.X, center.Y)
	player := entity.NewPlayer(lib, center, config.WorldWidth, config.WorldHeight)
	cam.SetTarget(player)
	rng := utils.NewPRNGService(42)
	d := event.NewDispatcher()
	spawner := NewSpawnSystem(lib, rng, cam, player, d, zerolog.Nop(), config.WorldWidth, config.WorldHeight)
	combat := NewCombatSystem(player, spawner, rng, d)
	combat.HealthDropChance = 0
	return &fixture{lib: lib, camera: cam, player: player, dispatcher: d, spawner: spawner, combat: combat}
}

type recorder struct{ events []event.Event }

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }
