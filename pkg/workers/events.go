package workers

import (
	"context"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/log"
)

// EventHandler reacts to game events outside the game loop.
type EventHandler interface {
	HandleShoot(event types.ShootEvent)
	HandleOutcome(event types.OutcomeEvent)
	HandleCelebration(event types.CelebrationEvent)
	HandleReset(event types.ResetEvent)
}

type EventWorker struct {
	eventChan <-chan types.Event
	handler   EventHandler
}

type NewEventWorkerOptions struct {
	EventChan <-chan types.Event
	Handler   EventHandler
}

// NewEventWorker creates a new EventWorker.
// The worker drains the events emitted by the game loop and hands each
// one to the handler, keeping slow consumers off the loop goroutine.
func NewEventWorker(opts NewEventWorkerOptions) *EventWorker {
	return &EventWorker{
		eventChan: opts.EventChan,
		handler:   opts.Handler,
	}
}

// Start runs until ctx is cancelled or the event channel is closed.
func (w *EventWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.eventChan:
			if !ok {
				return
			}
			w.handleEvent(event)
		}
	}
}

func (w *EventWorker) handleEvent(event types.Event) {
	switch e := event.(type) {
	case types.ShootEvent:
		w.handler.HandleShoot(e)
	case types.OutcomeEvent:
		w.handler.HandleOutcome(e)
	case types.CelebrationEvent:
		w.handler.HandleCelebration(e)
	case types.ResetEvent:
		w.handler.HandleReset(e)
	default:
		log.Error("Unhandled event type: %T", event)
	}
}
