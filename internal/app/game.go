// internal/app/game.go
package app

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"karai-survival/internal/camera"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/entity"
	"karai-survival/internal/event"
	"karai-survival/internal/input"
	"karai-survival/internal/system"
	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

// Options - параметры сессии.
type Options struct {
	Seed   int64 // 0 - сид от текущего времени
	Logger zerolog.Logger
}

// Summary - итоги забега для экрана конца игры.
type Summary struct {
	SessionID    string
	Level        int
	Kills        int
	SurvivalTime float64
	DamageDealt  float64
	DamageTaken  float64
	XPCollected  float64
	Spawned      int
	WaveCycle    int
}

// Game владеет одним забегом: игроком, камерой, системами спавна и боя.
// Диспетчер событий живёт дольше забега, поэтому подписки (звук, UI)
// переживают перезапуск.
type Game struct {
	ID              string
	Lib             *defs.Library
	Player          *entity.Player
	Camera          *camera.Camera
	SpawnSystem     *system.SpawnSystem
	CombatSystem    *system.CombatSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Logger          zerolog.Logger

	baseLogger zerolog.Logger
	seed       int64
	isPaused   bool
	isOver     bool
	lastLevel  int
	lastDamage float64
	choices    []entity.Upgrade
}

// NewGame создаёт сессию и сразу начинает первый забег.
func NewGame(lib *defs.Library, opts Options) *Game {
	g := &Game{
		Lib:             lib,
		EventDispatcher: event.NewDispatcher(),
		baseLogger:      opts.Logger,
		seed:            opts.Seed,
	}
	listener := &GameEventListener{game: g}
	g.EventDispatcher.SubscribeAll(listener, event.PlayerDamaged, event.BossWaveSpawned, event.PlayerDied)
	g.Restart()
	return g
}

// Restart начинает новый забег: всё состояние и счётчики создаются заново.
func (g *Game) Restart() {
	g.ID = uuid.NewString()
	g.Logger = g.baseLogger.With().Str("session", g.ID).Logger()
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(g.seed)
	}

	center := types.Vec2{X: config.WorldWidth / 2, Y: config.WorldHeight / 2}
	g.Player = entity.NewPlayer(g.Lib, center, config.WorldWidth, config.WorldHeight)
	g.Camera = camera.New(config.ScreenWidth, config.ScreenHeight, config.WorldWidth, config.WorldHeight, config.CameraFollowRate)
	g.Camera.SetTarget(g.Player)
	g.Camera.CenterOn(center.X, center.Y)
	g.SpawnSystem = system.NewSpawnSystem(g.Lib, g.Rng, g.Camera, g.Player, g.EventDispatcher, g.Logger, config.WorldWidth, config.WorldHeight)
	g.CombatSystem = system.NewCombatSystem(g.Player, g.SpawnSystem, g.Rng, g.EventDispatcher)

	g.isPaused = false
	g.isOver = false
	g.lastLevel = g.Player.Level
	g.lastDamage = 0
	g.choices = nil

	g.Logger.Info().Int64("seed", g.Rng.Seed()).Msg("game started")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted, Data: g.ID})
}

// Update - один тик симуляции в фиксированном порядке: ввод, игрок, камера,
// спавн и ИИ врагов, бой, удаление мёртвых, проверки уровня и смерти.
// На паузе, при ожидании выбора улучшения и после смерти ничего не делает.
func (g *Game) Update(dt float64, in input.Snapshot) {
	if g.isPaused || g.isOver || g.AwaitingUpgrade() {
		return
	}
	g.Player.SetInput(in.Direction())
	g.Player.Update(dt)
	g.Camera.Update(dt)
	g.SpawnSystem.Update(dt)
	g.CombatSystem.Update(dt, in.Trigger)
	g.SpawnSystem.Reap()
	g.checkPlayer()
}

func (g *Game) checkPlayer() {
	p := g.Player
	if p.DamageTaken > g.lastDamage {
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: p.DamageTaken - g.lastDamage})
		g.lastDamage = p.DamageTaken
	}
	for g.lastLevel < p.Level {
		g.lastLevel++
		g.Logger.Info().Int("level", g.lastLevel).Float64("time", g.SpawnSystem.Elapsed()).Msg("level up")
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: g.lastLevel})
	}
	if p.LevelUpPending() && g.choices == nil {
		g.choices = p.GenerateUpgradeChoices(g.Rng)
	}
	if !p.IsAlive() {
		g.isOver = true
		s := g.Summary()
		g.Logger.Info().
			Int("level", s.Level).
			Int("kills", s.Kills).
			Float64("survived", s.SurvivalTime).
			Float64("damage_dealt", s.DamageDealt).
			Float64("damage_taken", s.DamageTaken).
			Msg("player died")
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: s})
	}
}

// SetPaused ставит или снимает паузу. Таймеры стоят, пока тик не вызывается.
func (g *Game) SetPaused(paused bool) { g.isPaused = paused }

func (g *Game) IsPaused() bool { return g.isPaused }

// IsOver - закончен ли забег (игрок погиб).
func (g *Game) IsOver() bool { return g.isOver }

// AwaitingUpgrade - ждёт ли игра выбора улучшения.
func (g *Game) AwaitingUpgrade() bool { return len(g.choices) > 0 }

// UpgradeChoices - текущие варианты улучшения (nil, если выбирать нечего).
func (g *Game) UpgradeChoices() []entity.Upgrade { return g.choices }

// ChooseUpgrade применяет вариант с индексом i и снимает одно отложенное
// повышение уровня. Если повышений несколько, сразу готовит следующий выбор.
func (g *Game) ChooseUpgrade(i int) bool {
	if i < 0 || i >= len(g.choices) {
		return false
	}
	choice := g.choices[i]
	applied := g.Player.ApplyUpgrade(choice)
	g.Player.ConsumeLevelUp()
	g.choices = nil
	if g.Player.LevelUpPending() {
		g.choices = g.Player.GenerateUpgradeChoices(g.Rng)
	}
	g.Logger.Debug().Str("upgrade", choice.Title).Bool("applied", applied).Msg("upgrade chosen")
	g.EventDispatcher.Dispatch(event.Event{Type: event.UpgradeChosen, Data: choice})
	return applied
}

// Threat - ближайший живой враг (nil, если живых нет) и число врагов
// ближе ThreatRadius к игроку. Для индикаторов угрозы на экране.
func (g *Game) Threat() (*entity.Enemy, int) {
	p := g.Player.Position()
	return g.SpawnSystem.NearestEnemy(p), len(g.SpawnSystem.EnemiesInRange(p, config.ThreatRadius))
}

// Summary собирает итоги текущего забега.
func (g *Game) Summary() Summary {
	stats := g.CombatSystem.Stats()
	return Summary{
		SessionID:    g.ID,
		Level:        g.Player.Level,
		Kills:        g.Player.Kills,
		SurvivalTime: g.Player.SurvivalTime,
		DamageDealt:  stats.DamageDealt,
		DamageTaken:  g.Player.DamageTaken,
		XPCollected:  stats.XPCollected,
		Spawned:      g.SpawnSystem.Spawned(),
		WaveCycle:    g.SpawnSystem.Waves().Cycle(),
	}
}
