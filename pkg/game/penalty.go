package game

import (
	"math/rand"
	"time"

	"github.com/cbodonnell/penaltykick/pkg/collisions"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/kinematic"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/google/uuid"
)

// Rand is the source of the keeper's dive position.
type Rand interface {
	Intn(n int) int
}

// Game is the penalty state machine. It owns its GameState exclusively and
// must be driven from a single goroutine.
type Game struct {
	state      *types.GameState
	rand       Rand
	resetDelay time.Duration
	reset      *Task
	closed     bool
}

// NewGameOptions contains options for creating a new Game.
type NewGameOptions struct {
	// Rand picks the keeper's dive. Defaults to a time-seeded source.
	Rand Rand
	// ResetDelay is how long a resolved shot is held before the next turn.
	// Defaults to constants.ResetDelay.
	ResetDelay time.Duration
}

func NewGame(opts NewGameOptions) *Game {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	resetDelay := opts.ResetDelay
	if resetDelay <= 0 {
		resetDelay = constants.ResetDelay
	}
	return &Game{
		state:      types.NewGameState(collisions.NewFieldSpace()),
		rand:       r,
		resetDelay: resetDelay,
	}
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() types.Snapshot {
	return g.state.Snapshot()
}

// ResetPending returns true if a resolved shot is waiting to be reset.
func (g *Game) ResetPending() bool {
	return g.reset != nil && g.reset.Pending()
}

// Shoot takes a shot at the target's current position.
// It is ignored unless the game is aiming.
func (g *Game) Shoot() []types.Event {
	if g.closed || g.state.Phase != types.PhaseAiming {
		return nil
	}

	s := g.state
	s.Phase = types.PhaseBallInFlight
	s.Resolved = false
	s.BallTargetX = s.TargetX
	s.GoalkeeperTargetX = g.drawKeeperTarget()
	s.ShotID = uuid.New()

	log.Debug("Shot %s aimed at %.1f, keeper diving to %.1f", s.ShotID, s.BallTargetX, s.GoalkeeperTargetX)

	return []types.Event{
		types.ShootEvent{
			ShotID:            s.ShotID,
			AimX:              s.BallTargetX,
			GoalkeeperTargetX: s.GoalkeeperTargetX,
		},
	}
}

// drawKeeperTarget picks a whole-unit dive position in [0, KeeperMaxX).
func (g *Game) drawKeeperTarget() float64 {
	n := int(constants.KeeperMaxX)
	if n <= 0 {
		return 0
	}
	x := float64(g.rand.Intn(n))
	return kinematic.Clamp(x, 0, constants.KeeperMaxX)
}

// Update advances the game by one tick. dt is the frame time and only
// drives the deferred reset; movement is per tick.
func (g *Game) Update(dt time.Duration) []types.Event {
	if g.closed {
		return nil
	}

	switch {
	case g.state.Phase == types.PhaseAiming:
		g.moveTarget()
		return nil
	case g.state.Resolved:
		return g.advanceReset(dt)
	default:
		return g.moveBall()
	}
}

func (g *Game) moveTarget() {
	s := g.state
	s.TargetX += constants.TargetSpeed * float64(s.TargetDirection)

	if s.TargetX >= constants.TargetMaxX {
		s.TargetX = constants.TargetMaxX
		s.TargetDirection = -1
	} else if s.TargetX <= 0 {
		s.TargetX = 0
		s.TargetDirection = 1
	}
}

func (g *Game) moveBall() []types.Event {
	s := g.state
	s.BallY += constants.BallSpeed

	progress := kinematic.Progress(s.BallY, constants.SpotY, constants.GoalLineY)
	s.BallX = kinematic.Lerp(constants.BallStartX, s.BallTargetX, progress)
	s.GoalkeeperX = kinematic.StepToward(s.GoalkeeperX, s.GoalkeeperTargetX, constants.KeeperSpeed)

	if s.BallY < constants.GoalLineY {
		s.SyncObjects()
		return nil
	}

	s.BallY = constants.GoalLineY
	s.SyncObjects()
	return g.resolve()
}

func (g *Game) resolve() []types.Event {
	s := g.state
	outcome := resolveObjects(s.BallObject, s.GoalkeeperObject)
	if outcome.IsScore() {
		s.Goals++
	} else {
		s.Misses++
	}
	s.Resolved = true
	s.LastOutcome = outcome

	log.Debug("Shot %s %s at %.1f (goals: %d, misses: %d)", s.ShotID, outcome, s.BallX, s.Goals, s.Misses)

	events := []types.Event{
		types.OutcomeEvent{
			ShotID:  s.ShotID,
			Outcome: outcome,
			BallX:   s.BallX,
			Goals:   s.Goals,
			Misses:  s.Misses,
		},
	}
	if outcome == types.OutcomeGoal {
		events = append(events, types.CelebrationEvent{ShotID: s.ShotID})
	}

	if g.reset != nil {
		g.reset.Cancel()
	}
	g.reset = NewTask(g.resetDelay, s.ResetTurn)

	return events
}

func (g *Game) advanceReset(dt time.Duration) []types.Event {
	if g.reset == nil {
		return nil
	}
	shotID := g.state.ShotID
	if !g.reset.Advance(dt) {
		return nil
	}
	g.reset = nil
	log.Trace("Shot %s reset", shotID)
	return []types.Event{types.ResetEvent{ShotID: shotID}}
}

// Close cancels any pending reset. The game ignores all input afterwards.
func (g *Game) Close() {
	if g.reset != nil {
		g.reset.Cancel()
		g.reset = nil
	}
	g.closed = true
}
