// cmd/arena-term/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"karai-survival/internal/app"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/logging"
)

// terminal - текстовый фронтенд: та же симуляция, вывод в клетки терминала.
type terminal struct {
	screen tcell.Screen
	game   *app.Game
	keys   heldKeys
	logger zerolog.Logger
}

func (t *terminal) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		t.keys.press(dirUp, now)
	case tcell.KeyDown:
		t.keys.press(dirDown, now)
	case tcell.KeyLeft:
		t.keys.press(dirLeft, now)
	case tcell.KeyRight:
		t.keys.press(dirRight, now)
	case tcell.KeyRune:
		return t.handleRune(ev.Rune(), now)
	}
	return true
}

func (t *terminal) handleRune(r rune, now time.Time) bool {
	g := t.game
	switch r {
	case 'q':
		return false
	case 'w':
		t.keys.press(dirUp, now)
	case 's':
		t.keys.press(dirDown, now)
	case 'a':
		t.keys.press(dirLeft, now)
	case 'd':
		t.keys.press(dirRight, now)
	case ' ':
		t.keys.pressTrigger()
	case 'p':
		g.SetPaused(!g.IsPaused())
		t.keys.reset()
	case 'r':
		if g.IsOver() {
			g.Restart()
			t.keys.reset()
		}
	case '1', '2', '3', '4', '5':
		if g.AwaitingUpgrade() {
			g.ChooseUpgrade(int(r - '1'))
		}
	}
	return true
}

func (t *terminal) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handleKey(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			t.game.Update(dt, t.keys.snapshot(now))
			draw(t.screen, t.game)
		}
	}
}

func main() {
	seed := flag.Int64("seed", 0, "seed for the run (0 = random)")
	dataDir := flag.String("data", "", "directory with definition YAML files (default: embedded)")
	logFile := flag.String("log-file", "", "write JSON logs to this file")
	logLevel := flag.String("log-level", "info", "log level")
	fps := flag.Int("fps", 30, "simulation and redraw rate")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger, err := logging.New(out, *logLevel, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var lib *defs.Library
	if *dataDir == "" {
		lib, err = defs.LoadDefaultLibrary()
	} else {
		lib, err = defs.LoadLibraryDir(*dataDir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load definitions: %v\n", err)
		os.Exit(1)
	}
	if *fps <= 0 {
		*fps = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	t := &terminal{
		screen: screen,
		game:   app.NewGame(lib, app.Options{Seed: *seed, Logger: logger}),
		logger: logger,
	}
	t.run(*fps)
	t.logger.Info().Interface("summary", t.game.Summary()).Msg("terminal session closed")
}
