package collisions

import (
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/solarlune/resolv"
)

const (
	TagBall       string = "ball"
	TagGoalkeeper string = "goalkeeper"
	TagGoal       string = "goal"
	TagPost       string = "post"
	TagTarget     string = "target"

	// CellSize is the resolv cell size used for the field space
	CellSize int = 10
	// PostWidth is the drawn width of a goal post
	PostWidth float64 = 6.0
)

// NewFieldSpace creates the collision space covering the playing field.
// The goal mouth and its posts are added as static objects; moving objects
// are added by their owners.
func NewFieldSpace() *resolv.Space {
	space := resolv.NewSpace(int(constants.FieldWidth), int(constants.FieldHeight), CellSize, CellSize)
	space.Add(
		resolv.NewObject(constants.GoalOffset, constants.GoalLineY, constants.GoalWidth, constants.GoalHeight, TagGoal),
		resolv.NewObject(constants.GoalOffset-PostWidth, constants.GoalLineY, PostWidth, constants.GoalHeight, TagPost),
		resolv.NewObject(constants.GoalOffset+constants.GoalWidth, constants.GoalLineY, PostWidth, constants.GoalHeight, TagPost),
	)
	return space
}

// HorizontalOverlap reports whether the horizontal spans of a and b strictly
// overlap. Spans that only touch at an edge do not overlap.
func HorizontalOverlap(a, b *resolv.Object) bool {
	aLeft, aRight := a.Position.X, a.Position.X+a.Size.X
	bLeft, bRight := b.Position.X, b.Position.X+b.Size.X
	return aRight > bLeft && aLeft < bRight
}

// HorizontallyOutside reports whether the horizontal span of o lies entirely
// outside [left, right]. Touching an edge counts as inside.
func HorizontallyOutside(o *resolv.Object, left, right float64) bool {
	return o.Position.X+o.Size.X < left || o.Position.X > right
}

// Move places o at (x, y) and refreshes its cell membership.
func Move(o *resolv.Object, x, y float64) {
	o.Position.X = x
	o.Position.Y = y
	o.Update()
}
