package game

import (
	"fmt"

	"github.com/cbodonnell/penaltykick/client/audio"
	"github.com/cbodonnell/penaltykick/client/input"
	"github.com/cbodonnell/penaltykick/client/scenes"
	"github.com/cbodonnell/penaltykick/pkg/game"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sound plays event cues.
	sound *audio.SoundManager
	// newGame creates the state machine for each penalty scene.
	newGame func() *game.Game
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// penalty is the current penalty scene, if any.
	penalty *scenes.PenaltyScene
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug bool
	Sound *audio.SoundManager
	// NewGame creates the state machine for each kick off. Defaults to a
	// randomly seeded game.
	NewGame func() *game.Game
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	newGame := opts.NewGame
	if newGame == nil {
		newGame = func() *game.Game {
			return game.NewGame(game.NewGameOptions{})
		}
	}
	g := &Game{
		debug:   opts.Debug,
		sound:   opts.Sound,
		newGame: newGame,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	opts := scenes.MenuSceneOptions{
		OnKickOff: func() {
			if err := g.loadPenalty(); err != nil {
				log.Error("Failed to start game: %v", err)
				if err := g.loadError("Failed to start game"); err != nil {
					log.Error("Failed to load error scene: %v", err)
				}
			}
		},
	}
	if g.sound != nil {
		opts.Muted = g.sound.Muted
		opts.OnMute = g.sound.SetMuted
	}
	menu, err := scenes.NewMenuScene(opts)
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	g.penalty = nil
	return nil
}

func (g *Game) loadPenalty() error {
	scene, err := scenes.NewPenaltyScene(scenes.PenaltySceneOptions{
		Game:  g.newGame(),
		Sound: g.sound,
	})
	if err != nil {
		return fmt.Errorf("failed to create penalty scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return fmt.Errorf("failed to set penalty scene: %v", err)
	}
	g.mode = GameModePlay
	g.penalty, _ = scene.(*scenes.PenaltyScene)
	return nil
}

func (g *Game) loadError(msg string) error {
	errorScene, err := scenes.NewErrorScene(msg)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = GameModeError
	g.penalty = nil
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	case GameModeError:
		if input.IsPositiveJustPressed() || input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Mode: %s", g.mode))

	if g.penalty == nil {
		return
	}

	s := g.penalty.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Phase: %s", s.Phase))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Ball: %0.1f, %0.1f", s.BallX, s.BallY))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n   Keeper: %0.1f -> %0.1f", s.GoalkeeperX, s.GoalkeeperTargetX))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(constants.FieldWidth), int(constants.FieldHeight)
}
