// internal/system/spawn.go
package system

import (
	"math"

	"github.com/rs/zerolog"

	"karai-survival/internal/camera"
	"karai-survival/internal/component"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/entity"
	"karai-survival/internal/event"
	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

// SpawnSystem производит врагов по времени: интервальный спавн за краем
// экрана, взвешенный выбор типа, фазы волн, рост сложности и босс-волны.
// Владеет коллекцией живых врагов: остальные системы её только читают.
type SpawnSystem struct {
	lib        *defs.Library
	rng        *utils.PRNGService
	camera     *camera.Camera
	player     *entity.Player
	dispatcher *event.Dispatcher
	logger     zerolog.Logger
	worldW     float64
	worldH     float64

	elapsed      float64
	spawnTimer   float64
	nextBossWave float64
	waves        *WaveCycle
	enemies      []*entity.Enemy
	nextID       types.EntityID
	weights      []float64
	spawned      int
}

// NewSpawnSystem создаёт планировщик, привязанный к камере и игроку.
func NewSpawnSystem(lib *defs.Library, rng *utils.PRNGService, cam *camera.Camera, player *entity.Player,
	dispatcher *event.Dispatcher, logger zerolog.Logger, worldW, worldH float64) *SpawnSystem {
	return &SpawnSystem{
		lib:          lib,
		rng:          rng,
		camera:       cam,
		player:       player,
		dispatcher:   dispatcher,
		logger:       logger,
		worldW:       worldW,
		worldH:       worldH,
		nextBossWave: lib.Spawning.BossWaveInterval,
		waves:        NewWaveCycle(lib.Phases),
		weights:      make([]float64, len(lib.EnemyOrder)),
	}
}

// Update: время игры, фазы волн, спавн, босс-волны и ИИ врагов.
func (s *SpawnSystem) Update(dt float64) {
	s.elapsed += dt

	for _, phase := range s.waves.Advance(dt) {
		s.logger.Debug().Str("phase", phase.Name).Int("cycle", s.waves.Cycle()).Float64("elapsed", s.elapsed).Msg("wave phase changed")
		s.dispatcher.Dispatch(event.Event{
			Type: event.WavePhaseChanged,
			Data: event.WavePhaseData{Phase: phase.Name, Cycle: s.waves.Cycle()},
		})
	}

	interval := s.CurrentInterval()
	if math.IsInf(interval, 1) {
		s.spawnTimer = 0
	} else {
		s.spawnTimer += dt
		if s.spawnTimer >= interval {
			s.spawnTimer -= interval
			if s.spawnTimer >= interval {
				s.spawnTimer = 0 // не навёрстываем пропущенные спавны пачкой
			}
			s.spawnBatch()
		}
	}

	if s.nextBossWave > 0 && s.elapsed >= s.nextBossWave {
		s.spawnBossWave()
		s.nextBossWave += s.lib.Spawning.BossWaveInterval
	}

	for _, e := range s.enemies {
		e.Update(dt)
	}
}

// Elapsed - время с начала забега.
func (s *SpawnSystem) Elapsed() float64 { return s.elapsed }

// Phase - текущая фаза волны.
func (s *SpawnSystem) Phase() defs.PhaseDefinition { return s.waves.Current() }

// Waves - машина фаз, только для чтения.
func (s *SpawnSystem) Waves() *WaveCycle { return s.waves }

// Enemies - живая коллекция врагов. Не изменять снаружи.
func (s *SpawnSystem) Enemies() []*entity.Enemy { return s.enemies }

// Spawned - сколько врагов появилось за забег.
func (s *SpawnSystem) Spawned() int { return s.spawned }

// BaseInterval - долгосрочный интервал спавна: уменьшается каждую полную
// минуту, но не ниже минимума.
func (s *SpawnSystem) BaseInterval() float64 {
	sp := s.lib.Spawning
	minutes := math.Floor(s.elapsed / 60)
	return math.Max(sp.MinInterval, sp.BaseInterval-sp.IntervalStep*minutes)
}

// CurrentInterval - интервал с учётом фазы; +Inf, если фаза не спавнит.
func (s *SpawnSystem) CurrentInterval() float64 {
	rate := s.waves.Current().SpawnRate
	if rate <= 0 {
		return math.Inf(1)
	}
	return s.BaseInterval() / rate
}

// EnemiesPerSpawn - размер пачки с учётом фазы, не меньше одного.
func (s *SpawnSystem) EnemiesPerSpawn() int {
	sp := s.lib.Spawning
	base := sp.BaseCount
	if base < 1 {
		base = 1
	}
	if sp.CountStepTime > 0 {
		base += int(s.elapsed / sp.CountStepTime)
	}
	n := int(math.Round(float64(base) * s.waves.Current().CountMultiplier))
	if n < 1 {
		n = 1
	}
	return n
}

// Difficulty - множители характеристик врагов за полные минуты игры.
func (s *SpawnSystem) Difficulty() entity.StatScale {
	d := s.lib.Spawning.Difficulty
	minutes := math.Floor(s.elapsed / 60)
	grow := func(rate float64) float64 {
		m := math.Pow(1+rate, minutes)
		if d.MaxMultiplier > 0 && m > d.MaxMultiplier {
			m = d.MaxMultiplier
		}
		return m
	}
	return entity.StatScale{
		Health: grow(d.HealthPerMinute),
		Damage: grow(d.DamagePerMinute),
		Speed:  grow(d.SpeedPerMinute),
	}
}

// ChooseEnemyType - взвешенный выбор типа: P(type) = weight / Σ weights.
// Тип с нулевым весом (например, босс до порога времени) не выбирается.
func (s *SpawnSystem) ChooseEnemyType() (defs.EnemyDefinition, bool) {
	horde := s.waves.Current().WeightBoost
	for i, id := range s.lib.EnemyOrder {
		s.weights[i] = s.lib.Enemies[id].WeightAt(s.elapsed, horde)
	}
	idx := s.rng.ChooseWeighted(s.weights)
	if idx < 0 {
		return defs.EnemyDefinition{}, false
	}
	return s.lib.Enemies[s.lib.EnemyOrder[idx]], true
}

// SpawnPosition выбирает точку в одной из четырёх полос сразу за краем
// экрана (сверху, снизу, слева, справа) и прижимает её к границам мира.
func (s *SpawnSystem) SpawnPosition() types.Vec2 {
	return s.spawnPositionOutside(config.SpawnMargin)
}

// spawnPositionOutside - как SpawnPosition, но с отступом margin от края экрана.
// Полосы, которые целиком за границей мира, не выбираются: прижатая к миру
// точка из такой полосы оказалась бы на экране.
func (s *SpawnSystem) spawnPositionOutside(margin float64) types.Vec2 {
	min, max := s.camera.View()
	sides := make([]int, 0, 4)
	if min.Y-margin >= 0 {
		sides = append(sides, 0)
	}
	if max.Y+margin <= s.worldH {
		sides = append(sides, 1)
	}
	if min.X-margin >= 0 {
		sides = append(sides, 2)
	}
	if max.X+margin <= s.worldW {
		sides = append(sides, 3)
	}
	if len(sides) == 0 {
		sides = append(sides, 0, 1, 2, 3)
	}

	var p types.Vec2
	switch sides[s.rng.Intn(len(sides))] {
	case 0:
		p = types.Vec2{X: s.rng.Range(min.X, max.X), Y: min.Y - margin}
	case 1:
		p = types.Vec2{X: s.rng.Range(min.X, max.X), Y: max.Y + margin}
	case 2:
		p = types.Vec2{X: min.X - margin, Y: s.rng.Range(min.Y, max.Y)}
	default:
		p = types.Vec2{X: max.X + margin, Y: s.rng.Range(min.Y, max.Y)}
	}
	return component.ClampToWorld(p, s.worldW, s.worldH)
}

// Spawn добавляет врага. При достижении лимита молча отказывает (nil).
func (s *SpawnSystem) Spawn(def defs.EnemyDefinition, pos types.Vec2, scale entity.StatScale) *entity.Enemy {
	if len(s.enemies) >= config.MaxEnemies {
		return nil
	}
	s.nextID++
	e := entity.NewEnemy(s.nextID, def, pos, s.player, scale)
	s.enemies = append(s.enemies, e)
	s.spawned++
	return e
}

func (s *SpawnSystem) spawnBatch() {
	scale := s.Difficulty()
	for i := s.EnemiesPerSpawn(); i > 0; i-- {
		def, ok := s.ChooseEnemyType()
		if !ok {
			return
		}
		if s.Spawn(def, s.SpawnPosition(), scale) == nil {
			return
		}
	}
}

// spawnBossWave: усиленный босс и свита вокруг него.
func (s *SpawnSystem) spawnBossWave() {
	sp := s.lib.Spawning
	bossDef, ok := s.lib.Enemies[sp.BossWaveEnemy]
	if !ok {
		s.logger.Error().Str("enemy", sp.BossWaveEnemy).Msg("boss wave enemy not defined")
		return
	}
	scale := s.Difficulty()
	boost := 1 + s.elapsed/sp.BossWaveInterval
	bossScale := entity.StatScale{Health: scale.Health * boost, Damage: scale.Damage * boost, Speed: scale.Speed}

	// свита разбросана вокруг босса, поэтому он стоит дальше от экрана на ширину разброса
	spread := config.BossWaveMinionSpread
	pos := s.spawnPositionOutside(config.SpawnMargin + spread)
	boss := s.Spawn(bossDef, pos, bossScale)
	if boss == nil {
		return
	}
	minions := 0
	if minionDef, ok := s.lib.Enemies[sp.BossWaveMinion]; ok {
		for i := 0; i < config.BossWaveMinionCount; i++ {
			offset := types.Vec2{X: s.rng.Range(-spread, spread), Y: s.rng.Range(-spread, spread)}
			p := component.ClampToWorld(pos.Add(offset), s.worldW, s.worldH)
			if s.camera.IsVisible(p, 0) {
				continue // камера у края мира: места за экраном не хватило
			}
			if s.Spawn(minionDef, p, scale) == nil {
				break
			}
			minions++
		}
	}
	s.logger.Info().Float64("elapsed", s.elapsed).Float64("boost", boost).Int("minions", minions).Msg("boss wave spawned")
	s.dispatcher.Dispatch(event.Event{Type: event.BossWaveSpawned, Data: boss})
}

// Reap удаляет мёртвых врагов, чья смерть уже обработана боевой системой.
// Вызывается после разрешения боя, иначе смерть на этом тике была бы потеряна.
func (s *SpawnSystem) Reap() int {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.IsAlive() || !e.DeathResolved() {
			kept = append(kept, e)
		}
	}
	removed := len(s.enemies) - len(kept)
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
	return removed
}

// EnemiesInRange - живые враги в радиусе r от точки.
func (s *SpawnSystem) EnemiesInRange(p types.Vec2, r float64) []*entity.Enemy {
	var out []*entity.Enemy
	for _, e := range s.enemies {
		if e.IsAlive() && p.Dist(e.Pos) <= r {
			out = append(out, e)
		}
	}
	return out
}

// NearestEnemy - ближайший живой враг или nil.
func (s *SpawnSystem) NearestEnemy(p types.Vec2) *entity.Enemy {
	var best *entity.Enemy
	bestDist := math.Inf(1)
	for _, e := range s.enemies {
		if !e.IsAlive() {
			continue
		}
		if d := p.Dist(e.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
