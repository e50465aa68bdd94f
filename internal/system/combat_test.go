package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karai-survival/internal/config"
	"karai-survival/internal/entity"
	"karai-survival/internal/event"
	"karai-survival/internal/types"
)

func TestMeleeKillCreatesExactlyOnePickup(t *testing.T) {
	f := newFixture(testLibrary())
	kills := &recorder{}
	f.dispatcher.Subscribe(event.EnemyKilled, kills)

	pos := f.player.Position()
	e := f.spawner.Spawn(f.lib.Enemies["CARPINCHO"], pos, entity.UnitScale)
	require.NotNil(t, e)

	f.combat.applyWeapons(0.016, false)
	f.combat.resolveDeaths()

	assert.False(t, e.IsAlive())
	require.Len(t, f.combat.Pickups(), 1)
	orb := f.combat.Pickups()[0]
	assert.Equal(t, entity.PickupXP, orb.Kind)
	assert.Equal(t, 10, orb.Value)
	assert.Equal(t, pos, orb.Pos)
	assert.Equal(t, 1, f.player.Kills)
	assert.Len(t, kills.events, 1)

	// повторное разрешение смертей не создаёт вторую сферу
	f.combat.resolveDeaths()
	assert.Len(t, f.combat.Pickups(), 1)
	assert.Equal(t, 1, f.combat.Stats().EnemiesKilled)
	assert.Equal(t, 30.0, f.combat.Stats().DamageDealt)

	f.spawner.Reap()
	assert.Empty(t, f.spawner.Enemies())
}

func TestFullTickKillsCollectsAndReaps(t *testing.T) {
	f := newFixture(testLibrary())
	f.spawner.Spawn(f.lib.Enemies["CARPINCHO"], f.player.Position(), entity.UnitScale)

	f.combat.Update(0.016, false)
	f.spawner.Reap()

	// сфера появилась под игроком и собрана в том же тике
	assert.Empty(t, f.combat.Pickups())
	assert.Empty(t, f.spawner.Enemies())
	assert.Equal(t, 10.0, f.player.XP)
	stats := f.combat.Stats()
	assert.Equal(t, 10.0, stats.XPCollected)
	assert.Equal(t, 1, stats.PickupsCollected)
}

func TestPickupFIFOEviction(t *testing.T) {
	f := newFixture(testLibrary())
	for i := 0; i <= config.MaxPickups; i++ {
		f.combat.AddPickup(entity.NewXPOrb(types.Vec2{}, i))
	}
	pickups := f.combat.Pickups()
	require.Len(t, pickups, config.MaxPickups)
	assert.Equal(t, 1, pickups[0].Value)
	assert.Equal(t, config.MaxPickups, pickups[len(pickups)-1].Value)
	assert.Equal(t, 1, f.combat.Stats().PickupsEvicted)
}

func TestHealthDropAccompaniesOrb(t *testing.T) {
	f := newFixture(testLibrary())
	f.combat.HealthDropChance = 1
	e := f.spawner.Spawn(f.lib.Enemies["CARPINCHO"], types.Vec2{X: 100, Y: 100}, entity.UnitScale)
	e.TakeDamage(1000)
	f.combat.resolveDeaths()

	require.Len(t, f.combat.Pickups(), 2)
	assert.Equal(t, entity.PickupXP, f.combat.Pickups()[0].Kind)
	assert.Equal(t, entity.PickupHealth, f.combat.Pickups()[1].Kind)
}

func TestWeaponWaitsWithoutEnemies(t *testing.T) {
	f := newFixture(testLibrary())
	fired := &recorder{}
	f.dispatcher.Subscribe(event.WeaponFired, fired)
	f.combat.Update(0.1, false)
	assert.Empty(t, fired.events)
	assert.True(t, f.player.Weapons[0].Ready())
}

func TestStatsAreMonotonic(t *testing.T) {
	f := newFixture(testLibrary())
	prev := f.combat.Stats()
	for i := 0; i < 200; i++ {
		f.player.Update(0.05)
		f.camera.Update(0.05)
		f.spawner.Update(0.05)
		f.combat.Update(0.05, i%10 == 0)
		f.spawner.Reap()
		cur := f.combat.Stats()
		require.GreaterOrEqual(t, cur.DamageDealt, prev.DamageDealt)
		require.GreaterOrEqual(t, cur.XPCollected, prev.XPCollected)
		require.GreaterOrEqual(t, cur.EnemiesKilled, prev.EnemiesKilled)
		prev = cur
	}
	for _, e := range f.spawner.Enemies() {
		assert.True(t, e.IsAlive() || !e.DeathResolved())
	}
}
