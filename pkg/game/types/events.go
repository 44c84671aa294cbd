package types

import "github.com/google/uuid"

// Event is emitted by the game for presentation layers.
type Event interface {
	EventShotID() uuid.UUID
}

// ShootInput is the input event that triggers a shot.
type ShootInput struct{}

type ShootEvent struct {
	ShotID uuid.UUID
	// AimX is the ball's target position captured at shot time
	AimX float64
	// GoalkeeperTargetX is where the keeper dives, relative to the goal
	GoalkeeperTargetX float64
}

type OutcomeEvent struct {
	ShotID  uuid.UUID
	Outcome Outcome
	// BallX is the ball's horizontal position at the goal line
	BallX  float64
	Goals  int
	Misses int
}

// CelebrationEvent follows the OutcomeEvent of a goal.
type CelebrationEvent struct {
	ShotID uuid.UUID
}

// ResetEvent is emitted when the turn returns to aiming.
type ResetEvent struct {
	ShotID uuid.UUID
}

func (e ShootEvent) EventShotID() uuid.UUID       { return e.ShotID }
func (e OutcomeEvent) EventShotID() uuid.UUID     { return e.ShotID }
func (e CelebrationEvent) EventShotID() uuid.UUID { return e.ShotID }
func (e ResetEvent) EventShotID() uuid.UUID       { return e.ShotID }
