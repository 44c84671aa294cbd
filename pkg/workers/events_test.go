package workers

import (
	"context"
	"testing"
	"time"

	mocks "github.com/cbodonnell/penaltykick/mocks/github.com/cbodonnell/penaltykick/pkg/workers"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventWorker_dispatch(t *testing.T) {
	shotID := uuid.New()
	shoot := types.ShootEvent{ShotID: shotID, AimX: 120, GoalkeeperTargetX: 30}
	outcome := types.OutcomeEvent{ShotID: shotID, Outcome: types.OutcomeGoal, BallX: 120, Goals: 1}
	celebration := types.CelebrationEvent{ShotID: shotID}
	reset := types.ResetEvent{ShotID: shotID}

	handler := mocks.NewEventHandler(t)
	calls := []string{}
	handler.EXPECT().HandleShoot(shoot).Run(func(types.ShootEvent) { calls = append(calls, "shoot") }).Once()
	handler.EXPECT().HandleOutcome(outcome).Run(func(types.OutcomeEvent) { calls = append(calls, "outcome") }).Once()
	handler.EXPECT().HandleCelebration(celebration).Run(func(types.CelebrationEvent) { calls = append(calls, "celebration") }).Once()
	handler.EXPECT().HandleReset(reset).Run(func(types.ResetEvent) { calls = append(calls, "reset") }).Once()

	events := make(chan types.Event, 4)
	events <- shoot
	events <- outcome
	events <- celebration
	events <- reset
	close(events)

	w := NewEventWorker(NewEventWorkerOptions{
		EventChan: events,
		Handler:   handler,
	})
	w.Start(context.Background())

	assert.Equal(t, []string{"shoot", "outcome", "celebration", "reset"}, calls)
}

func TestEventWorker_stopsOnCancel(t *testing.T) {
	handler := mocks.NewEventHandler(t)
	events := make(chan types.Event)

	w := NewEventWorker(NewEventWorkerOptions{
		EventChan: events,
		Handler:   handler,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
