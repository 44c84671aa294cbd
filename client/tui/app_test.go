package tui

import (
	"testing"

	queuemocks "github.com/cbodonnell/penaltykick/mocks/github.com/cbodonnell/penaltykick/pkg/queue"
	workersmocks "github.com/cbodonnell/penaltykick/mocks/github.com/cbodonnell/penaltykick/pkg/workers"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMuter struct {
	muted bool
}

func (m *fakeMuter) Muted() bool         { return m.muted }
func (m *fakeMuter) SetMuted(muted bool) { m.muted = muted }

func TestApp_handleInput(t *testing.T) {
	q := queuemocks.NewQueue(t)
	q.EXPECT().Enqueue(&types.ShootInput{}).Return(nil).Once()
	muter := &fakeMuter{}

	a := NewApp(NewAppOptions{InputQueue: q, Muter: muter})

	assert.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.True(t, muter.muted)
	assert.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, a.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestApp_events(t *testing.T) {
	shotID := uuid.New()
	next := workersmocks.NewEventHandler(t)
	next.EXPECT().HandleShoot(types.ShootEvent{ShotID: shotID}).Once()
	next.EXPECT().HandleOutcome(types.OutcomeEvent{ShotID: shotID, Outcome: types.OutcomeGoal, Goals: 1}).Once()
	next.EXPECT().HandleCelebration(types.CelebrationEvent{ShotID: shotID}).Once()
	next.EXPECT().HandleReset(types.ResetEvent{ShotID: shotID}).Once()

	a := NewApp(NewAppOptions{Next: next})

	a.HandleShoot(types.ShootEvent{ShotID: shotID})
	a.HandleOutcome(types.OutcomeEvent{ShotID: shotID, Outcome: types.OutcomeGoal, Goals: 1})
	assert.False(t, a.Celebrating())
	a.HandleCelebration(types.CelebrationEvent{ShotID: shotID})
	assert.True(t, a.Celebrating())
	a.HandleReset(types.ResetEvent{ShotID: shotID})
	assert.False(t, a.Celebrating())
}
