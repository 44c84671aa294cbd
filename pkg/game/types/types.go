package types

// Phase is the phase of a penalty turn. Exactly one phase is active at a time.
type Phase uint8

const (
	// PhaseAiming is the initial phase: the target oscillates and a shot may be taken.
	PhaseAiming Phase = iota
	// PhaseBallInFlight is active from the shot until the turn is reset.
	PhaseBallInFlight
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseBallInFlight:
		return "ball-in-flight"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolved shot.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeGoal
	OutcomeSaved
	OutcomeMissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeGoal:
		return "goal"
	case OutcomeSaved:
		return "saved"
	case OutcomeMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeGoal:
		return "GOAAALLL!!!"
	case OutcomeSaved:
		return "SAVED BY THE KEEPER!"
	case OutcomeMissed:
		return "MISSED!"
	default:
		return "PRESS SPACE TO SHOOT"
	}
}

// IsScore returns true if the outcome adds to the goal counter.
func (o Outcome) IsScore() bool {
	return o == OutcomeGoal
}
