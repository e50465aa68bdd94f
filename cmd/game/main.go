// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"karai-survival/internal/app"
	"karai-survival/internal/assets"
	"karai-survival/internal/audio"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/logging"
	"karai-survival/internal/render"
	"karai-survival/internal/state"
	"karai-survival/internal/ui"
	"karai-survival/pkg/tilemap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "seed for the run (0 = random)")
	dataDir := flag.String("data", "", "directory with definition YAML files (default: embedded)")
	spriteDir := flag.String("sprites", "", "directory with <name>.png sprites")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	prettyLog := flag.Bool("pretty-log", true, "human readable log output")
	mute := flag.Bool("mute", false, "disable sound")
	menu := flag.Bool("menu", true, "start from the title menu")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel, *prettyLog)
	if err != nil {
		logger = zerolog.New(os.Stderr)
		logger.Fatal().Err(err).Msg("bad log level")
	}

	if *pprofAddr != "" {
		go func() {
			logger.Info().Str("addr", *pprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	lib, err := loadLibrary(*dataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load definitions")
	}
	logger.Info().Int("enemies", len(lib.Enemies)).Int("weapons", len(lib.Weapons)).Msg("definitions loaded")

	sound := audio.NewSoundManager(logger)
	if !*mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		}
	}
	defer sound.Cleanup()

	game := app.NewGame(lib, app.Options{Seed: *seed, Logger: logger})
	audio.NewEventListener(sound).Attach(game.EventDispatcher)

	sprites := assets.NewSpriteManager(*spriteDir, logger)
	sprites.Load(spriteNames(lib)...)
	defer sprites.Cleanup()

	tiles := tilemap.New(config.MapTilesX, config.MapTilesY, config.TileSize, game.Rng.Seed())
	world := render.NewWorldRenderer(tiles, sprites)
	defer world.Cleanup()

	ctx := &state.Context{
		Game:   game,
		World:  world,
		HUD:    ui.NewHUD(sprites),
		Music:  sound,
		Logger: logger,
	}
	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		game.Restart() // перезапуск после подписки звука, чтобы заиграла музыка
		sm.SetState(state.NewGameState(sm, ctx))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Karai")
	if err := ebiten.RunGame(a); err != nil {
		logger.Error().Err(err).Msg("game loop failed")
	}
}

func loadLibrary(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.LoadDefaultLibrary()
	}
	return defs.LoadLibraryDir(dir)
}

func spriteNames(lib *defs.Library) []string {
	var names []string
	for _, id := range lib.EnemyOrder {
		names = append(names, lib.Enemies[id].Sprite)
	}
	for _, id := range lib.WeaponOrder {
		names = append(names, lib.Weapons[id].Sprite)
	}
	return names
}
