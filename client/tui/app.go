package tui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/cbodonnell/penaltykick/pkg/queue"
	"github.com/cbodonnell/penaltykick/pkg/state"
	"github.com/cbodonnell/penaltykick/pkg/workers"
	"github.com/gdamore/tcell/v2"
)

// Muter toggles audio cues.
type Muter interface {
	Muted() bool
	SetMuted(muted bool)
}

// App renders the latest published snapshot to a terminal and feeds key
// presses into the game's input queue. It also handles game events so
// the goal can be highlighted while a goal is celebrated.
type App struct {
	screen         tcell.Screen
	inputQueue     queue.Queue
	stateManager   state.StateManager
	next           workers.EventHandler
	muter          Muter
	renderInterval time.Duration
	celebrating    atomic.Bool
}

type NewAppOptions struct {
	// Screen must already be initialised.
	Screen       tcell.Screen
	InputQueue   queue.Queue
	StateManager state.StateManager
	// Next receives every event after the app has handled it. Optional.
	Next workers.EventHandler
	// Muter is toggled by the mute key. Optional.
	Muter Muter
	// RenderInterval is the redraw interval.
	RenderInterval time.Duration
}

var _ workers.EventHandler = &App{}

func NewApp(opts NewAppOptions) *App {
	return &App{
		screen:         opts.Screen,
		inputQueue:     opts.InputQueue,
		stateManager:   opts.StateManager,
		next:           opts.Next,
		muter:          opts.Muter,
		renderInterval: opts.RenderInterval,
	}
}

// Run draws and handles input until ctx is cancelled or the player quits.
func (a *App) Run(ctx context.Context) error {
	if a.renderInterval <= 0 {
		return fmt.Errorf("invalid render interval: %v", a.renderInterval)
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(a.renderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !a.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			if err := a.draw(ctx); err != nil {
				log.Warn("Failed to draw: %v", err)
			}
		}
	}
}

// handleInput returns false when the player asked to quit.
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch KeyAction(ev) {
		case ActionQuit:
			return false
		case ActionShoot:
			if err := a.inputQueue.Enqueue(&types.ShootInput{}); err != nil {
				log.Warn("Failed to enqueue shoot input: %v", err)
			}
		case ActionMute:
			if a.muter != nil {
				a.muter.SetMuted(!a.muter.Muted())
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) draw(ctx context.Context) error {
	s, err := a.stateManager.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get game state: %v", err)
	}
	cols, rows := a.screen.Size()
	Paint(a.screen, Render(s, cols, rows, a.celebrating.Load()))
	return nil
}

// Paint copies f to screen and shows it.
func Paint(screen tcell.Screen, f *Frame) {
	screen.Clear()
	for row, cells := range f.Cells {
		for col, cell := range cells {
			if cell.Rune == 0 {
				continue
			}
			screen.SetContent(col, row, cell.Rune, nil, cell.Style)
		}
	}
	screen.Show()
}

func (a *App) HandleShoot(event types.ShootEvent) {
	log.Info("Shot %s aimed at %.0f", event.ShotID, event.AimX)
	if a.next != nil {
		a.next.HandleShoot(event)
	}
}

func (a *App) HandleOutcome(event types.OutcomeEvent) {
	log.Info("Shot %s %s (goals: %d, misses: %d)", event.ShotID, event.Outcome, event.Goals, event.Misses)
	if a.next != nil {
		a.next.HandleOutcome(event)
	}
}

func (a *App) HandleCelebration(event types.CelebrationEvent) {
	a.celebrating.Store(true)
	if a.next != nil {
		a.next.HandleCelebration(event)
	}
}

func (a *App) HandleReset(event types.ResetEvent) {
	a.celebrating.Store(false)
	if a.next != nil {
		a.next.HandleReset(event)
	}
}

func (a *App) Celebrating() bool {
	return a.celebrating.Load()
}
