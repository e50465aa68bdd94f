package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karai-survival/internal/defs"
	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

func testLibrary(xpTable ...float64) *defs.Library {
	if len(xpTable) == 0 {
		xpTable = []float64{100, 150, 225}
	}
	weapons := map[string]defs.WeaponDefinition{
		"MACHETE": {ID: "MACHETE", Name: "Machete", Archetype: defs.ArchetypeMelee, Trigger: defs.TriggerAuto, Cooldown: 0.5,
			Levels: []defs.WeaponLevel{{Damage: 15, Range: 60}, {Damage: 22, Range: 70}}},
		"HACHA": {ID: "HACHA", Name: "Hacha", Archetype: defs.ArchetypeProjectile, Trigger: defs.TriggerAuto, Cooldown: 1.2,
			Levels: []defs.WeaponLevel{{Damage: 25, Count: 1}}},
	}
	return &defs.Library{
		Enemies: map[string]defs.EnemyDefinition{
			"CARPINCHO": {ID: "CARPINCHO", Health: 30, Speed: 80, Damage: 5, XP: 10, SpawnWeight: 10},
		},
		EnemyOrder:  []string{"CARPINCHO"},
		Weapons:     weapons,
		WeaponOrder: []string{"MACHETE", "HACHA"},
		Progression: defs.Progression{XPTable: xpTable, Growth: 1.5, StartingWeapon: "MACHETE"},
	}
}

func newTestPlayer(xpTable ...float64) *Player {
	return NewPlayer(testLibrary(xpTable...), types.Vec2{X: 500, Y: 500}, 1000, 1000)
}

func TestBaseHealthClampProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for run := 0; run < 200; run++ {
		deaths := 0
		b := NewBase(types.Vec2{}, 10, 1+rng.Float64()*200, 10, 10)
		b.onDeath = func() { deaths++ }
		for step := 0; step < 50; step++ {
			amount := rng.Float64() * 80
			if rng.Intn(2) == 0 {
				b.TakeDamage(amount)
			} else {
				b.Heal(amount)
			}
			require.GreaterOrEqual(t, b.Health.Current, 0.0)
			require.LessOrEqual(t, b.Health.Current, b.Health.Max)
			require.Equal(t, b.Health.Current > 0, b.IsAlive())
		}
		require.LessOrEqual(t, deaths, 1)
		require.Equal(t, !b.IsAlive(), deaths == 1)
	}
}

func TestMoveNormalizesDirection(t *testing.T) {
	b := NewBase(types.Vec2{}, 100, 10, 10, 10)
	b.Dir = types.Vec2{X: 3, Y: 4}
	b.Move(0.5)
	assert.InDelta(t, 30.0, b.Pos.X, 1e-9)
	assert.InDelta(t, 40.0, b.Pos.Y, 1e-9)
	assert.Equal(t, 25, b.Hitbox().Min.X)

	b.Dir = types.Vec2{}
	b.Move(1)
	assert.InDelta(t, 30.0, b.Pos.X, 1e-9)
}

func TestKnockbackZeroDirectionIsNoop(t *testing.T) {
	b := NewBase(types.Vec2{X: 5, Y: 5}, 0, 10, 10, 10)
	b.ReceiveKnockback(types.Vec2{}, 200)
	assert.Equal(t, types.Vec2{X: 5, Y: 5}, b.Pos)
	b.ReceiveKnockback(types.Vec2{X: 0, Y: -1}, 20)
	assert.Equal(t, types.Vec2{X: 5, Y: -15}, b.Pos)
	assert.Equal(t, -20, b.Hitbox().Min.Y)
}

func TestCollidesWithTouchingEdges(t *testing.T) {
	a := NewBase(types.Vec2{X: 0, Y: 0}, 0, 1, 10, 10)
	b := NewBase(types.Vec2{X: 10, Y: 0}, 0, 1, 10, 10)
	assert.False(t, a.CollidesWith(&b))
	b.SetPosition(types.Vec2{X: 9, Y: 0})
	assert.True(t, a.CollidesWith(&b))
}

func TestGainXPDrainsAllThresholds(t *testing.T) {
	p := newTestPlayer(25, 40, 60)
	p.Health.Current = 10

	p.GainXP(130)
	assert.Equal(t, 4, p.Level)
	assert.InDelta(t, 5.0, p.XP, 1e-9)
	assert.InDelta(t, 90.0, p.RequiredXP, 1e-9)
	assert.Equal(t, 3, p.PendingLevelUps())
	assert.Equal(t, p.Health.Max, p.Health.Current)
	assert.Less(t, p.XP, p.RequiredXP)

	assert.True(t, p.ConsumeLevelUp())
	assert.True(t, p.ConsumeLevelUp())
	assert.True(t, p.ConsumeLevelUp())
	assert.False(t, p.ConsumeLevelUp())
	assert.False(t, p.LevelUpPending())
}

func TestInvulnerabilityWindow(t *testing.T) {
	p := newTestPlayer()
	assert.Equal(t, 10.0, p.TakeDamage(10))
	assert.True(t, p.IsInvulnerable())

	p.Update(0.25)
	assert.Zero(t, p.TakeDamage(10))
	assert.Equal(t, 90.0, p.Health.Current)

	p.Update(0.251) // окно закрылось 1 мс назад
	assert.False(t, p.IsInvulnerable())
	assert.Equal(t, 10.0, p.TakeDamage(10))
	assert.Equal(t, 80.0, p.Health.Current)
	assert.Equal(t, 20.0, p.DamageTaken)
}

func TestRegenerationHealsForDuration(t *testing.T) {
	p := newTestPlayer()
	p.Health.Current = 50
	p.StartRegeneration(4, 2)
	for i := 0; i < 10; i++ {
		p.Update(0.5)
	}
	assert.InDelta(t, 58.0, p.Health.Current, 1e-9)
	assert.False(t, p.IsRegenerating())
}

func TestPlayerClampedToWorld(t *testing.T) {
	p := newTestPlayer()
	p.SetInput(types.Vec2{X: -1})
	p.Update(10)
	assert.Equal(t, 0.0, p.Pos.X)
	assert.InDelta(t, 10.0, p.SurvivalTime, 1e-9)
}

func TestEnemyChasesAndAttacksWithCooldown(t *testing.T) {
	lib := testLibrary()
	p := NewPlayer(lib, types.Vec2{X: 100, Y: 100}, 1000, 1000)
	e := NewEnemy(1, lib.Enemies["CARPINCHO"], types.Vec2{X: 110, Y: 100}, p, UnitScale)

	e.Update(0.1)
	assert.Less(t, e.Pos.X, 110.0)
	assert.Equal(t, 95.0, p.Health.Current)

	// атака на перезарядке, игрок к тому же неуязвим
	e.Update(0.1)
	assert.Equal(t, 95.0, p.Health.Current)
}

func TestEnemyDeathCountsKillOnceAndClaimsOnce(t *testing.T) {
	lib := testLibrary()
	p := newTestPlayer()
	e := NewEnemy(1, lib.Enemies["CARPINCHO"], types.Vec2{}, p, StatScale{Health: 2, Damage: 1, Speed: 1})
	assert.Equal(t, 60.0, e.Health.Max)

	assert.False(t, e.ClaimDeath())
	e.TakeDamage(100)
	e.TakeDamage(100)
	assert.Equal(t, 1, p.Kills)
	assert.True(t, e.ClaimDeath())
	assert.False(t, e.ClaimDeath())
	assert.True(t, e.DeathResolved())
}

func TestCollectPickupsMagnetism(t *testing.T) {
	p := newTestPlayer()
	near := NewXPOrb(types.Vec2{X: 540, Y: 500}, 10)
	far := NewXPOrb(types.Vec2{X: 700, Y: 500}, 10)
	heal := NewHealthDrop(types.Vec2{X: 510, Y: 500}, 20)
	p.Health.Current = 50

	got := p.CollectPickups(0.01, []*Pickup{near, far, heal})
	// 40 px, шаг 3 px - ещё не касается хитбокса игрока (край на 525)
	assert.InDelta(t, 537.0, near.Pos.X, 1e-9)
	assert.Equal(t, 700.0, far.Pos.X)
	require.Len(t, got, 1)
	assert.Same(t, heal, got[0])
	assert.Equal(t, 70.0, p.Health.Current)

	for i := 0; i < 10; i++ {
		p.CollectPickups(0.01, []*Pickup{near})
	}
	assert.True(t, near.Collected)
	assert.Equal(t, 10.0, p.XP)
	assert.Equal(t, 10.0, p.TotalXP)
}

func TestGenerateUpgradeChoices(t *testing.T) {
	p := newTestPlayer()
	rng := utils.NewPRNGService(3)
	for i := 0; i < 50; i++ {
		choices := p.GenerateUpgradeChoices(rng)
		require.Len(t, choices, 3)
		seen := map[Upgrade]bool{}
		for _, c := range choices {
			assert.False(t, seen[c], "duplicate choice %+v", c)
			seen[c] = true
		}
	}
	// пул: HACHA (новое), MACHETE 1->2, три пассивных
	assert.Len(t, p.UpgradePool(), 5)
}

func TestApplyUpgrade(t *testing.T) {
	p := newTestPlayer()
	require.True(t, p.ApplyUpgrade(Upgrade{Kind: UpgradeNewWeapon, WeaponID: "HACHA"}))
	assert.False(t, p.ApplyUpgrade(Upgrade{Kind: UpgradeNewWeapon, WeaponID: "HACHA"}))
	require.True(t, p.ApplyUpgrade(Upgrade{Kind: UpgradeWeaponLevel, WeaponID: "MACHETE"}))
	assert.False(t, p.ApplyUpgrade(Upgrade{Kind: UpgradeWeaponLevel, WeaponID: "MACHETE"}))
	assert.Equal(t, 2, p.Weapon("MACHETE").Level)

	p.ApplyUpgrade(Upgrade{Kind: UpgradeMaxHealth, Amount: 20})
	p.ApplyUpgrade(Upgrade{Kind: UpgradeSpeed, Amount: 20})
	p.ApplyUpgrade(Upgrade{Kind: UpgradeCollection, Amount: 20})
	assert.Equal(t, 120.0, p.Health.Max)
	assert.Equal(t, 120.0, p.Health.Current)
	assert.Equal(t, 220.0, p.Speed)
	assert.Equal(t, 70.0, p.CollectionRadius)

	// всё оружие на максимуме и всё открыто - остаются только пассивные
	assert.Len(t, p.UpgradePool(), 3)
}

func TestWeaponCap(t *testing.T) {
	lib := testLibrary()
	for i := 0; i < 8; i++ {
		id := string(rune('A' + i))
		lib.Weapons[id] = defs.WeaponDefinition{ID: id, Archetype: defs.ArchetypeMelee, Cooldown: 1, Levels: []defs.WeaponLevel{{}}}
		lib.WeaponOrder = append(lib.WeaponOrder, id)
	}
	p := NewPlayer(lib, types.Vec2{}, 100, 100)
	added := 0
	for _, id := range lib.WeaponOrder {
		if p.AddWeapon(id) {
			added++
		}
	}
	assert.Equal(t, 5, added)
	assert.Len(t, p.Weapons, 6)
}
