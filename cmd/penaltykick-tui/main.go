package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/penaltykick/client/audio"
	"github.com/cbodonnell/penaltykick/client/tui"
	"github.com/cbodonnell/penaltykick/pkg/config"
	"github.com/cbodonnell/penaltykick/pkg/game"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/cbodonnell/penaltykick/pkg/queue"
	"github.com/cbodonnell/penaltykick/pkg/state"
	"github.com/cbodonnell/penaltykick/pkg/version"
	"github.com/cbodonnell/penaltykick/pkg/workers"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	// the screen owns stdout, so logs are discarded unless a file is given
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log.SetDefaultLogger(log.New(out, "", log.DefaultLoggerFlag, cfg.LogLevel))
	log.Info("Starting penaltykick-tui version %s", version.Get())

	if err := run(cfg); err != nil {
		log.Error("Exiting: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	sound := audio.NewSoundManager(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		log.Warn("Audio disabled: %v", err)
	}
	defer sound.Close()

	var dive game.Rand
	if cfg.Seed != 0 {
		dive = rand.New(rand.NewSource(cfg.Seed))
	}

	inputQueue := queue.NewInMemoryQueue(queue.DefaultQueueBufferSize)
	stateManager := state.NewInMemoryStateManager()
	eventChanSize := 100
	eventChan := make(chan types.Event, eventChanSize)

	app := tui.NewApp(tui.NewAppOptions{
		Screen:         screen,
		InputQueue:     inputQueue,
		StateManager:   stateManager,
		Next:           sound,
		Muter:          sound,
		RenderInterval: cfg.TickInterval,
	})

	eventWorker := workers.NewEventWorker(workers.NewEventWorkerOptions{
		EventChan: eventChan,
		Handler:   app,
	})
	go eventWorker.Start(ctx)

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Game:             game.NewGame(game.NewGameOptions{Rand: dive}),
		InputQueue:       inputQueue,
		StateManager:     stateManager,
		EventChan:        eventChan,
		GameLoopInterval: cfg.TickInterval,
	})
	managerErr := make(chan error, 1)
	go func() {
		log.Info("Starting game manager")
		managerErr <- gameManager.Start(ctx)
	}()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("failed to run terminal app: %v", err)
	}
	cancel()
	if err := <-managerErr; err != nil {
		return fmt.Errorf("failed to run game manager: %v", err)
	}
	return nil
}
