package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the same dive position for every shot.
type fixedRand struct {
	t     *testing.T
	value int
}

func (r *fixedRand) Intn(n int) int {
	assert.Equal(r.t, int(constants.KeeperMaxX), n)
	return r.value
}

const testResetDelay = 2 * time.Second

func newTestGame(t *testing.T, keeperTarget int) *Game {
	return NewGame(NewGameOptions{
		Rand:       &fixedRand{t: t, value: keeperTarget},
		ResetDelay: testResetDelay,
	})
}

// flyUntilResolved ticks the game until the shot in flight resolves and
// returns the events of the resolving tick along with the number of ticks.
func flyUntilResolved(t *testing.T, g *Game) ([]types.Event, int) {
	for ticks := 1; ticks <= 100; ticks++ {
		events := g.Update(constants.DefaultTickInterval)
		if g.state.Resolved {
			return events, ticks
		}
		require.Empty(t, events, "tick %d", ticks)
	}
	t.Fatal("shot never resolved")
	return nil, 0
}

func TestNewGame_initialState(t *testing.T) {
	g := newTestGame(t, 0)
	s := g.Snapshot()

	assert.Equal(t, types.PhaseAiming, s.Phase)
	assert.False(t, s.Resolved)
	assert.Equal(t, 0.0, s.TargetX)
	assert.Equal(t, 1, s.TargetDirection)
	assert.Equal(t, 285.0, s.BallX)
	assert.Equal(t, 100.0, s.BallY)
	assert.Equal(t, 125.0, s.GoalkeeperX)
	assert.Equal(t, 0, s.Goals)
	assert.Equal(t, 0, s.Misses)
	assert.Equal(t, uuid.Nil, s.ShotID)
	assert.Equal(t, "PRESS SPACE TO SHOOT", s.Message())
}

func TestGame_targetOscillation(t *testing.T) {
	g := newTestGame(t, 0)

	previousDirection := g.state.TargetDirection
	for tick := 1; tick <= 1000; tick++ {
		events := g.Update(constants.DefaultTickInterval)
		assert.Empty(t, events)

		s := g.Snapshot()
		require.GreaterOrEqual(t, s.TargetX, 0.0, "tick %d", tick)
		require.LessOrEqual(t, s.TargetX, constants.TargetMaxX, "tick %d", tick)
		require.Contains(t, []int{-1, 1}, s.TargetDirection)

		atBound := s.TargetX == 0 || s.TargetX == constants.TargetMaxX
		flipped := s.TargetDirection != previousDirection
		assert.Equal(t, atBound, flipped, "tick %d: x=%v", tick, s.TargetX)
		previousDirection = s.TargetDirection
	}
}

func TestGame_targetPeriod(t *testing.T) {
	g := newTestGame(t, 0)
	period := int(2 * constants.TargetMaxX / constants.TargetSpeed)
	require.Equal(t, 290, period)

	for i := 0; i < period/2; i++ {
		g.Update(constants.DefaultTickInterval)
	}
	assert.Equal(t, constants.TargetMaxX, g.state.TargetX)
	assert.Equal(t, -1, g.state.TargetDirection)

	for i := 0; i < period/2; i++ {
		g.Update(constants.DefaultTickInterval)
	}
	assert.Equal(t, 0.0, g.state.TargetX)
	assert.Equal(t, 1, g.state.TargetDirection)
}

func TestGame_Shoot(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 10; i++ {
		g.Update(constants.DefaultTickInterval)
	}

	events := g.Shoot()
	require.Len(t, events, 1)
	shoot, ok := events[0].(types.ShootEvent)
	require.True(t, ok)

	s := g.Snapshot()
	assert.Equal(t, types.PhaseBallInFlight, s.Phase)
	assert.Equal(t, 40.0, s.BallTargetX)
	assert.Equal(t, 42.0, s.GoalkeeperTargetX)
	assert.NotEqual(t, uuid.Nil, s.ShotID)
	assert.Equal(t, s.ShotID, shoot.ShotID)
	assert.Equal(t, 40.0, shoot.AimX)
	assert.Equal(t, 42.0, shoot.GoalkeeperTargetX)
	assert.Equal(t, "SHOOT!", s.Message())
}

func TestGame_ShootWhileInFlightIsIgnored(t *testing.T) {
	g := newTestGame(t, 10)
	require.Len(t, g.Shoot(), 1)
	g.Update(constants.DefaultTickInterval)
	before := g.Snapshot()

	assert.Nil(t, g.Shoot())
	assert.Equal(t, before, g.Snapshot())

	// still ignored while the resolved shot waits for its reset
	flyUntilResolved(t, g)
	resolved := g.Snapshot()
	assert.Nil(t, g.Shoot())
	assert.Equal(t, resolved, g.Snapshot())
}

func TestGame_targetFrozenDuringFlight(t *testing.T) {
	g := newTestGame(t, 10)
	g.state.TargetX = 200
	g.Shoot()
	for i := 0; i < 5; i++ {
		g.Update(constants.DefaultTickInterval)
	}
	assert.Equal(t, 200.0, g.state.TargetX)
}

func TestGame_finalBallPosition(t *testing.T) {
	g := newTestGame(t, 0)
	g.state.TargetX = 400
	g.Shoot()

	_, ticks := flyUntilResolved(t, g)

	s := g.Snapshot()
	assert.Equal(t, 21, ticks)
	assert.Equal(t, 400.0, s.BallX)
	assert.Equal(t, constants.GoalLineY, s.BallY)
}

func TestGame_ballInterpolation(t *testing.T) {
	g := newTestGame(t, 0)
	g.state.TargetX = 535
	g.Shoot()

	for tick := 1; g.state.BallY < constants.GoalLineY; tick++ {
		g.Update(constants.DefaultTickInterval)
		s := g.Snapshot()
		if s.Resolved {
			break
		}
		progress := (s.BallY - constants.SpotY) / (constants.GoalLineY - constants.SpotY)
		assert.InDelta(t, 285+250*progress, s.BallX, 1e-9, "tick %d", tick)
		assert.Equal(t, constants.SpotY+constants.BallSpeed*float64(tick), s.BallY)
	}
}

func TestGame_keeperDoesNotOvershoot(t *testing.T) {
	tests := []struct {
		name         string
		keeperTarget int
		wantFirst    float64
		wantFinal    float64
	}{
		{name: "one unit left", keeperTarget: 124, wantFirst: 124, wantFinal: 124},
		{name: "two units right", keeperTarget: 127, wantFirst: 127, wantFinal: 127},
		{name: "far left", keeperTarget: 0, wantFirst: 122, wantFinal: 62},
		{name: "far right", keeperTarget: 249, wantFirst: 128, wantFinal: 188},
		{name: "centre", keeperTarget: 125, wantFirst: 125, wantFinal: 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.keeperTarget)
			g.Shoot()

			g.Update(constants.DefaultTickInterval)
			assert.Equal(t, tt.wantFirst, g.state.GoalkeeperX)

			flyUntilResolved(t, g)
			assert.Equal(t, tt.wantFinal, g.state.GoalkeeperX)
		})
	}
}

func TestGame_shotOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		targetX      float64
		keeperTarget int
		want         types.Outcome
		wantGoals    int
		wantMisses   int
	}{
		{
			name:         "goal past a diving keeper",
			targetX:      160,
			keeperTarget: 200,
			want:         types.OutcomeGoal,
			wantGoals:    1,
		},
		{
			name:         "saved down the middle",
			targetX:      285,
			keeperTarget: 125,
			want:         types.OutcomeSaved,
			wantMisses:   1,
		},
		{
			name:         "missed wide left",
			targetX:      0,
			keeperTarget: 0,
			want:         types.OutcomeMissed,
			wantMisses:   1,
		},
		{
			name:         "missed wide right",
			targetX:      580,
			keeperTarget: 249,
			want:         types.OutcomeMissed,
			wantMisses:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.keeperTarget)
			g.state.TargetX = tt.targetX
			g.Shoot()
			shotID := g.state.ShotID

			events, _ := flyUntilResolved(t, g)

			require.NotEmpty(t, events)
			outcome, ok := events[0].(types.OutcomeEvent)
			require.True(t, ok)
			assert.Equal(t, tt.want, outcome.Outcome)
			assert.Equal(t, shotID, outcome.ShotID)
			assert.Equal(t, tt.wantGoals, outcome.Goals)
			assert.Equal(t, tt.wantMisses, outcome.Misses)

			if tt.want == types.OutcomeGoal {
				require.Len(t, events, 2)
				assert.Equal(t, types.CelebrationEvent{ShotID: shotID}, events[1])
			} else {
				assert.Len(t, events, 1)
			}

			s := g.Snapshot()
			assert.Equal(t, tt.wantGoals, s.Goals)
			assert.Equal(t, tt.wantMisses, s.Misses)
			assert.Equal(t, tt.want, s.LastOutcome)
			assert.Equal(t, tt.want.Message(), s.Message())
		})
	}
}

func TestGame_reset(t *testing.T) {
	g := newTestGame(t, 200)
	g.state.TargetX = 160
	g.Shoot()
	shotID := g.state.ShotID
	flyUntilResolved(t, g)
	resolved := g.Snapshot()

	step := 500 * time.Millisecond
	for i := 0; i < 3; i++ {
		assert.Empty(t, g.Update(step))
		assert.Equal(t, resolved, g.Snapshot(), "state must hold until the delay elapses")
	}

	events := g.Update(step)
	require.Len(t, events, 1)
	assert.Equal(t, types.ResetEvent{ShotID: shotID}, events[0])

	s := g.Snapshot()
	assert.Equal(t, types.PhaseAiming, s.Phase)
	assert.False(t, s.Resolved)
	assert.Equal(t, constants.BallStartX, s.BallX)
	assert.Equal(t, constants.SpotY, s.BallY)
	assert.Equal(t, constants.KeeperStartX, s.GoalkeeperX)
	assert.Equal(t, resolved.Goals, s.Goals)
	assert.Equal(t, resolved.Misses, s.Misses)
	assert.Equal(t, resolved.TargetX, s.TargetX)
	assert.Equal(t, constants.BallStartX, g.state.BallObject.Position.X)
	assert.Equal(t, constants.GoalOffset+constants.KeeperStartX, g.state.GoalkeeperObject.Position.X)
	assert.False(t, g.ResetPending())

	// the reset fires once
	assert.Empty(t, g.Update(step))
	// and a new shot can be taken
	assert.Len(t, g.Shoot(), 1)
}

func TestGame_CloseCancelsPendingReset(t *testing.T) {
	g := newTestGame(t, 0)
	g.Shoot()
	flyUntilResolved(t, g)
	require.True(t, g.ResetPending())

	g.Close()
	assert.False(t, g.ResetPending())

	for i := 0; i < 10; i++ {
		assert.Empty(t, g.Update(time.Second))
	}
	s := g.Snapshot()
	assert.True(t, s.Resolved)
	assert.Equal(t, types.PhaseBallInFlight, s.Phase)
	assert.Nil(t, g.Shoot())
}

func TestGame_scoreCountsEveryShot(t *testing.T) {
	g := NewGame(NewGameOptions{
		Rand:       rand.New(rand.NewSource(7)),
		ResetDelay: testResetDelay,
	})
	r := rand.New(rand.NewSource(11))

	goals, misses := 0, 0
	for shot := 1; shot <= 60; shot++ {
		for i := r.Intn(300); i > 0; i-- {
			g.Update(constants.DefaultTickInterval)
		}
		require.Len(t, g.Shoot(), 1)

		events, _ := flyUntilResolved(t, g)
		outcome := events[0].(types.OutcomeEvent)
		if outcome.Outcome == types.OutcomeGoal {
			goals++
		} else {
			misses++
		}

		s := g.Snapshot()
		require.Equal(t, shot, s.Goals+s.Misses)
		require.Equal(t, goals, s.Goals)
		require.Equal(t, misses, s.Misses)
		require.Equal(t, ResolveShot(s.BallX, s.GoalkeeperX), outcome.Outcome)

		require.NotEmpty(t, g.Update(testResetDelay))
		require.Equal(t, types.PhaseAiming, g.Snapshot().Phase)
	}
}
