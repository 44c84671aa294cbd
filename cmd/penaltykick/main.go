package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/cbodonnell/penaltykick/client/audio"
	clientgame "github.com/cbodonnell/penaltykick/client/game"
	"github.com/cbodonnell/penaltykick/pkg/config"
	"github.com/cbodonnell/penaltykick/pkg/game"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/cbodonnell/penaltykick/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to parse flags: %v", err))
	}

	out := os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.DefaultLoggerFlag, cfg.LogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", cfg.LogLevel)

	log.Info("Starting penaltykick version %s", version.Get())

	sound := audio.NewSoundManager(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		log.Warn("Audio disabled: %v", err)
	}
	defer sound.Close()

	var dive game.Rand
	if cfg.Seed != 0 {
		dive = rand.New(rand.NewSource(cfg.Seed))
	}

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug: cfg.Debug,
		Sound: sound,
		NewGame: func() *game.Game {
			return game.NewGame(game.NewGameOptions{Rand: dive})
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(int(constants.FieldWidth), int(constants.FieldHeight))
	ebiten.SetWindowTitle("Penalty Kick")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
