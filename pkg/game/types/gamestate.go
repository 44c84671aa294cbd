package types

import (
	"github.com/cbodonnell/penaltykick/pkg/collisions"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// GameState holds all mutable state of the penalty game.
// It is owned by a single game instance and is not safe for concurrent use.
type GameState struct {
	// Phase is the current phase of the turn
	Phase Phase
	// Resolved is set once the shot in flight has been resolved and the turn is waiting to reset
	Resolved bool

	// TargetX is the left edge of the target
	TargetX float64
	// TargetDirection is the travel direction of the target, either -1 or 1
	TargetDirection int

	// BallX and BallY are the ball's position in field coordinates
	BallX float64
	BallY float64
	// BallTargetX is the aim point captured when the shot was taken
	BallTargetX float64

	// GoalkeeperX is the keeper's left edge relative to the goal
	GoalkeeperX float64
	// GoalkeeperTargetX is the keeper's dive position relative to the goal
	GoalkeeperTargetX float64

	// Goals and Misses are the cumulative score counters
	Goals  int
	Misses int

	// ShotID identifies the shot in progress
	ShotID uuid.UUID
	// LastOutcome is the outcome of the most recent resolved shot
	LastOutcome Outcome

	// CollisionSpace is the resolv.Space the ball and keeper objects live in
	CollisionSpace *resolv.Space
	// BallObject mirrors the ball in field coordinates
	BallObject *resolv.Object
	// GoalkeeperObject mirrors the keeper in field coordinates
	GoalkeeperObject *resolv.Object
}

// NewGameState creates a game state with the target at the left bound, the
// ball on the spot, the keeper centred and the score at zero.
func NewGameState(collisionSpace *resolv.Space) *GameState {
	g := &GameState{
		Phase:             PhaseAiming,
		TargetX:           0,
		TargetDirection:   1,
		BallX:             constants.BallStartX,
		BallY:             constants.SpotY,
		GoalkeeperX:       constants.KeeperStartX,
		GoalkeeperTargetX: constants.KeeperStartX,
		CollisionSpace:    collisionSpace,
		BallObject:        resolv.NewObject(constants.BallStartX, constants.SpotY, constants.BallWidth, constants.BallWidth, collisions.TagBall),
		GoalkeeperObject:  resolv.NewObject(constants.GoalOffset+constants.KeeperStartX, constants.GoalLineY, constants.KeeperWidth, constants.KeeperHeight, collisions.TagGoalkeeper),
	}
	if collisionSpace != nil {
		collisionSpace.Add(g.BallObject, g.GoalkeeperObject)
	}
	return g
}

// SyncObjects moves the collision objects to the current ball and keeper positions.
func (g *GameState) SyncObjects() {
	collisions.Move(g.BallObject, g.BallX, g.BallY)
	collisions.Move(g.GoalkeeperObject, constants.GoalOffset+g.GoalkeeperX, constants.GoalLineY)
}

// ResetTurn returns the ball to the spot and the keeper to the centre.
// The score and the target are left untouched.
func (g *GameState) ResetTurn() {
	g.Phase = PhaseAiming
	g.Resolved = false
	g.BallX = constants.BallStartX
	g.BallY = constants.SpotY
	g.BallTargetX = 0
	g.GoalkeeperX = constants.KeeperStartX
	g.GoalkeeperTargetX = constants.KeeperStartX
	g.ShotID = uuid.Nil
	g.SyncObjects()
}

// Shots returns the number of resolved shots.
func (g *GameState) Shots() int {
	return g.Goals + g.Misses
}

// Snapshot returns a copy of the state without collision references.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Phase:             g.Phase,
		Resolved:          g.Resolved,
		TargetX:           g.TargetX,
		TargetDirection:   g.TargetDirection,
		BallX:             g.BallX,
		BallY:             g.BallY,
		BallTargetX:       g.BallTargetX,
		GoalkeeperX:       g.GoalkeeperX,
		GoalkeeperTargetX: g.GoalkeeperTargetX,
		Goals:             g.Goals,
		Misses:            g.Misses,
		ShotID:            g.ShotID,
		LastOutcome:       g.LastOutcome,
	}
}

// Snapshot is a read-only view of the game state handed to renderers.
type Snapshot struct {
	Phase             Phase     `json:"phase"`
	Resolved          bool      `json:"resolved"`
	TargetX           float64   `json:"targetX"`
	TargetDirection   int       `json:"targetDirection"`
	BallX             float64   `json:"ballX"`
	BallY             float64   `json:"ballY"`
	BallTargetX       float64   `json:"ballTargetX"`
	GoalkeeperX       float64   `json:"goalkeeperX"`
	GoalkeeperTargetX float64   `json:"goalkeeperTargetX"`
	Goals             int       `json:"goals"`
	Misses            int       `json:"misses"`
	ShotID            uuid.UUID `json:"shotID"`
	LastOutcome       Outcome   `json:"lastOutcome"`
}

// GoalkeeperAbsoluteX returns the keeper's left edge in field coordinates.
func (s Snapshot) GoalkeeperAbsoluteX() float64 {
	return constants.GoalOffset + s.GoalkeeperX
}

// Message returns the status text for the snapshot.
func (s Snapshot) Message() string {
	if s.Phase == PhaseBallInFlight && !s.Resolved {
		return "SHOOT!"
	}
	if s.Resolved {
		return s.LastOutcome.Message()
	}
	return OutcomeNone.Message()
}
