package objects

import (
	"image/color"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
)

var (
	goalColor   = color.RGBA{R: 60, G: 220, B: 90, A: 255}
	savedColor  = color.RGBA{R: 255, G: 150, B: 30, A: 255}
	missedColor = color.RGBA{R: 235, G: 50, B: 50, A: 255}
)

// OutcomeColor returns the colour an outcome message is drawn in.
func OutcomeColor(outcome types.Outcome) color.Color {
	switch outcome {
	case types.OutcomeGoal:
		return goalColor
	case types.OutcomeSaved:
		return savedColor
	case types.OutcomeMissed:
		return missedColor
	}
	return color.White
}

// MessageColor returns the colour of the message line for s.
func MessageColor(s types.Snapshot) color.Color {
	if !s.Resolved {
		return color.White
	}
	return OutcomeColor(s.LastOutcome)
}
