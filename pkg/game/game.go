package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/cbodonnell/penaltykick/pkg/queue"
	"github.com/cbodonnell/penaltykick/pkg/state"
)

// GameManager drives a Game from a ticker. The Game is only touched from
// the goroutine running Start.
type GameManager struct {
	game             *Game
	inputQueue       queue.Queue
	stateManager     state.StateManager
	eventChan        chan<- types.Event
	gameLoopInterval time.Duration
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// Game is the game to drive.
	Game *Game
	// InputQueue receives inputs from the input collaborator.
	InputQueue queue.Queue
	// StateManager receives a snapshot after every tick.
	StateManager state.StateManager
	// EventChan receives the events of every tick. Optional.
	EventChan chan<- types.Event
	// GameLoopInterval is the tick interval.
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		game:             opts.Game,
		inputQueue:       opts.InputQueue,
		stateManager:     opts.StateManager,
		eventChan:        opts.EventChan,
		gameLoopInterval: opts.GameLoopInterval,
	}
}

// Start starts the game loop. It returns when ctx is cancelled,
// closing the game so that no pending reset can fire afterwards.
func (gm *GameManager) Start(ctx context.Context) error {
	if gm.gameLoopInterval <= 0 {
		return fmt.Errorf("invalid game loop interval: %v", gm.gameLoopInterval)
	}
	defer gm.game.Close()

	if err := gm.publishState(ctx); err != nil {
		return fmt.Errorf("failed to publish initial game state: %v", err)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := gm.gameTick(ctx); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context) error {
	gm.processInputs()
	gm.dispatchEvents(gm.game.Update(gm.gameLoopInterval))
	return gm.publishState(ctx)
}

// processInputs processes all pending inputs in the queue.
func (gm *GameManager) processInputs() {
	pendingInputs, err := gm.inputQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read inputs: %v", err)
		return
	}
	for _, item := range pendingInputs {
		switch item.(type) {
		case *types.ShootInput, types.ShootInput:
			gm.dispatchEvents(gm.game.Shoot())
		default:
			log.Error("Unhandled input type: %T", item)
		}
	}
}

// dispatchEvents forwards events without blocking the loop.
func (gm *GameManager) dispatchEvents(events []types.Event) {
	if gm.eventChan == nil {
		return
	}
	for _, event := range events {
		select {
		case gm.eventChan <- event:
		default:
			log.Warn("Event channel is full, dropping %T", event)
		}
	}
}

func (gm *GameManager) publishState(ctx context.Context) error {
	if err := gm.stateManager.Set(ctx, gm.game.Snapshot()); err != nil {
		return fmt.Errorf("failed to set game state: %v", err)
	}
	return nil
}
