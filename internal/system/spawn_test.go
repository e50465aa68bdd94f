package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/entity"
	"karai-survival/internal/event"
	"karai-survival/internal/types"
)

func TestWaveCycleBoundaryIsInclusive(t *testing.T) {
	w := NewWaveCycle(testLibrary().Phases)
	entered := 0
	for i := 0; i < 89; i++ { // 44.5 с
		entered += len(w.Advance(0.5))
	}
	assert.Equal(t, defs.PhaseRest, w.Current().Name)
	assert.Equal(t, 2, entered)

	entered += len(w.Advance(0.5)) // ровно 45 с: REST закончилась
	assert.Equal(t, defs.PhaseCalm, w.Current().Name)
	assert.Equal(t, 3, entered)
	assert.Equal(t, 2, w.Cycle())
	assert.Zero(t, w.PhaseElapsed())
}

func TestWaveCycleAtExactPhaseEnd(t *testing.T) {
	w := NewWaveCycle(testLibrary().Phases)
	w.Advance(24.5)
	assert.Equal(t, defs.PhaseCalm, w.Current().Name)
	w.Advance(0.5)
	assert.Equal(t, defs.PhaseHorde, w.Current().Name)
}

func TestWaveCycleLongTickCrossesSeveralPhases(t *testing.T) {
	w := NewWaveCycle(testLibrary().Phases)
	entered := w.Advance(40)
	require.Len(t, entered, 2)
	assert.Equal(t, defs.PhaseHorde, entered[0].Name)
	assert.Equal(t, defs.PhaseRest, entered[1].Name)
	assert.InDelta(t, 3.0, w.PhaseElapsed(), 1e-9)
	assert.InDelta(t, 5.0, w.PhaseRemaining(), 1e-9)
}

func TestSpawnerDispatchesEachPhaseChangeOnce(t *testing.T) {
	f := newFixture(testLibrary())
	rec := &recorder{}
	f.dispatcher.Subscribe(event.WavePhaseChanged, rec)
	for i := 0; i < 90; i++ {
		f.spawner.Update(0.5)
	}
	require.Len(t, rec.events, 3)
	assert.Equal(t, event.WavePhaseData{Phase: defs.PhaseCalm, Cycle: 2}, rec.events[2].Data)
	assert.Equal(t, defs.PhaseCalm, f.spawner.Phase().Name)
}

func TestBossExcludedUntilUnlocked(t *testing.T) {
	f := newFixture(testLibrary())
	for i := 0; i < 10000; i++ {
		def, ok := f.spawner.ChooseEnemyType()
		require.True(t, ok)
		require.NotEqual(t, "AGUARA_GUAZU", def.ID)
	}

	f.spawner.elapsed = 300
	counts := map[string]int{}
	const draws = 40000
	for i := 0; i < draws; i++ {
		def, _ := f.spawner.ChooseEnemyType()
		counts[def.ID]++
	}
	assert.InDelta(t, 2.0/23.0, float64(counts["AGUARA_GUAZU"])/draws, 0.01)
	assert.InDelta(t, 10.0/23.0, float64(counts["CARPINCHO"])/draws, 0.01)
}

func TestHordeBoostsWeights(t *testing.T) {
	f := newFixture(testLibrary())
	f.spawner.waves.Advance(25)
	require.Equal(t, defs.PhaseHorde, f.spawner.Phase().Name)
	counts := map[string]int{}
	const draws = 40000
	for i := 0; i < draws; i++ {
		def, _ := f.spawner.ChooseEnemyType()
		counts[def.ID]++
	}
	// 10 : 10.5 : 8
	assert.InDelta(t, 8.0/28.5, float64(counts["TATU"])/draws, 0.01)
}

func TestSpawnPositionJustOutsideView(t *testing.T) {
	f := newFixture(testLibrary())
	center := f.player.Position()
	maxDist := math.Hypot(config.ScreenWidth/2+config.SpawnMargin, config.ScreenHeight/2+config.SpawnMargin)
	for i := 0; i < 1000; i++ {
		p := f.spawner.SpawnPosition()
		require.False(t, f.camera.IsVisible(p, config.SpawnMargin/2), "visible spawn at %+v", p)
		require.LessOrEqual(t, center.Dist(p), maxDist+1e-9)
	}
}

func TestSpawnPositionClampedToWorld(t *testing.T) {
	f := newFixture(testLibrary())
	f.camera.CenterOn(0, 0)
	for i := 0; i < 500; i++ {
		p := f.spawner.SpawnPosition()
		require.GreaterOrEqual(t, p.X, 0.0)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.LessOrEqual(t, p.X, float64(config.WorldWidth))
		require.LessOrEqual(t, p.Y, float64(config.WorldHeight))
	}
}

func TestIntervalScheduleAndFloor(t *testing.T) {
	f := newFixture(testLibrary())
	assert.Equal(t, 1.0, f.spawner.BaseInterval())
	assert.Equal(t, 1, f.spawner.EnemiesPerSpawn())

	f.spawner.elapsed = 125
	assert.InDelta(t, 0.9, f.spawner.BaseInterval(), 1e-9)
	assert.Equal(t, 2, f.spawner.EnemiesPerSpawn())

	f.spawner.waves.Advance(25)
	assert.InDelta(t, 0.36, f.spawner.CurrentInterval(), 1e-9)
	assert.Equal(t, 4, f.spawner.EnemiesPerSpawn())

	f.spawner.elapsed = 60 * 30
	assert.Equal(t, 0.2, f.spawner.BaseInterval())
}

func TestZeroSpawnRateSuspendsSpawning(t *testing.T) {
	lib := testLibrary()
	lib.Phases[0].SpawnRate = 0
	f := newFixture(lib)
	assert.True(t, math.IsInf(f.spawner.CurrentInterval(), 1))
	for i := 0; i < 20; i++ {
		f.spawner.Update(0.5)
	}
	assert.Empty(t, f.spawner.Enemies())
}

func TestUpdateSpawnsOnInterval(t *testing.T) {
	f := newFixture(testLibrary())
	f.spawner.Update(0.5)
	assert.Empty(t, f.spawner.Enemies())
	f.spawner.Update(0.5)
	assert.Len(t, f.spawner.Enemies(), 1)
	assert.Equal(t, 1, f.spawner.Spawned())
}

func TestDifficultyCompoundsAndCaps(t *testing.T) {
	f := newFixture(testLibrary())
	assert.Equal(t, entity.UnitScale, f.spawner.Difficulty())

	f.spawner.elapsed = 130
	d := f.spawner.Difficulty()
	assert.InDelta(t, 1.21, d.Health, 1e-9)
	assert.InDelta(t, 1.1025, d.Damage, 1e-9)

	f.spawner.elapsed = 60 * 60
	assert.Equal(t, 3.0, f.spawner.Difficulty().Health)
}

func TestEnemyCapRefusesSilently(t *testing.T) {
	f := newFixture(testLibrary())
	def := f.lib.Enemies["CARPINCHO"]
	for i := 0; i < config.MaxEnemies+5; i++ {
		f.spawner.Spawn(def, types.Vec2{}, entity.UnitScale)
	}
	assert.Len(t, f.spawner.Enemies(), config.MaxEnemies)
	assert.Nil(t, f.spawner.Spawn(def, types.Vec2{}, entity.UnitScale))
}

func TestBossWave(t *testing.T) {
	lib := testLibrary()
	lib.Spawning.BossWaveInterval = 600
	lib.Spawning.BossWaveEnemy = "AGUARA_GUAZU"
	lib.Spawning.BossWaveMinion = "CARPINCHO"
	f := newFixture(lib)
	rec := &recorder{}
	f.dispatcher.Subscribe(event.BossWaveSpawned, rec)

	f.spawner.elapsed = 599.5
	f.spawner.nextBossWave = 600
	f.spawner.Update(0.5)

	require.Len(t, rec.events, 1)
	boss := rec.events[0].Data.(*entity.Enemy)
	// 10 полных минут: 1.1^10 (с потолком 3), буст 1 + 600/600
	assert.InDelta(t, 150*math.Pow(1.1, 10)*2, boss.Health.Max, 1e-6)
	assert.GreaterOrEqual(t, len(f.spawner.Enemies()), 11)
	assert.Equal(t, 1200.0, f.spawner.nextBossWave)
}

func bossWaveLibrary() *defs.Library {
	lib := testLibrary()
	lib.Spawning.BossWaveInterval = 600
	lib.Spawning.BossWaveEnemy = "AGUARA_GUAZU"
	lib.Spawning.BossWaveMinion = "CARPINCHO"
	return lib
}

func TestBossWaveSpawnsOffScreen(t *testing.T) {
	f := newFixture(bossWaveLibrary())
	f.spawner.elapsed = 600
	for i := 0; i < 50; i++ {
		f.spawner.enemies = nil
		f.spawner.spawnBossWave()
		require.Len(t, f.spawner.Enemies(), 1+config.BossWaveMinionCount)
		for _, e := range f.spawner.Enemies() {
			require.False(t, f.camera.IsVisible(e.Pos, 0), "%s visible at %+v", e.Def.ID, e.Pos)
		}
	}
}

func TestBossWaveOffScreenAtWorldCorner(t *testing.T) {
	f := newFixture(bossWaveLibrary())
	f.spawner.elapsed = 600
	f.camera.CenterOn(0, 0)
	for i := 0; i < 50; i++ {
		f.spawner.enemies = nil
		f.spawner.spawnBossWave()
		require.NotEmpty(t, f.spawner.Enemies())
		for _, e := range f.spawner.Enemies() {
			require.False(t, f.camera.IsVisible(e.Pos, 0), "%s visible at %+v", e.Def.ID, e.Pos)
		}
	}
}

func TestSpawnPositionOffScreenAtWorldCorner(t *testing.T) {
	f := newFixture(testLibrary())
	f.camera.CenterOn(config.WorldWidth, config.WorldHeight)
	for i := 0; i < 500; i++ {
		p := f.spawner.SpawnPosition()
		require.False(t, f.camera.IsVisible(p, config.SpawnMargin/2), "visible spawn at %+v", p)
	}
}

func TestReapWaitsForDeathResolution(t *testing.T) {
	f := newFixture(testLibrary())
	e := f.spawner.Spawn(f.lib.Enemies["CARPINCHO"], types.Vec2{}, entity.UnitScale)
	e.TakeDamage(1000)

	assert.Zero(t, f.spawner.Reap())
	assert.Len(t, f.spawner.Enemies(), 1)

	require.True(t, e.ClaimDeath())
	assert.Equal(t, 1, f.spawner.Reap())
	assert.Empty(t, f.spawner.Enemies())
}

func TestNearestAndInRange(t *testing.T) {
	f := newFixture(testLibrary())
	def := f.lib.Enemies["CARPINCHO"]
	a := f.spawner.Spawn(def, types.Vec2{X: 10}, entity.UnitScale)
	b := f.spawner.Spawn(def, types.Vec2{X: 50}, entity.UnitScale)
	f.spawner.Spawn(def, types.Vec2{X: 500}, entity.UnitScale)

	assert.Same(t, a, f.spawner.NearestEnemy(types.Vec2{}))
	assert.Len(t, f.spawner.EnemiesInRange(types.Vec2{}, 60), 2)
	a.TakeDamage(1000)
	assert.Same(t, b, f.spawner.NearestEnemy(types.Vec2{}))
}
