package constants

import "time"

// All positions are in field units with the origin at the bottom-left of the
// field and y growing toward the goal. Speeds are in units per tick.
const (
	// FieldWidth is the width of the playing field
	FieldWidth float64 = 600.0
	// FieldHeight is the height of the playing field
	FieldHeight float64 = 400.0

	// TargetWidth is the width of the aiming target
	TargetWidth float64 = 20.0
	// TargetSpeed is the distance the target travels each tick
	TargetSpeed float64 = 4.0
	// TargetMaxX is the right-most position of the target
	TargetMaxX float64 = FieldWidth - TargetWidth

	// BallWidth is the width of the ball
	BallWidth float64 = 30.0
	// BallSpeed is the vertical distance the ball travels each tick
	BallSpeed float64 = 12.0
	// BallStartX is the horizontal launch position (field centre minus half a ball)
	BallStartX float64 = 285.0
	// SpotY is the vertical position of the penalty spot
	SpotY float64 = 100.0
	// GoalLineY is the vertical position at which a shot is resolved
	GoalLineY float64 = 350.0

	// GoalOffset is the horizontal offset of the goal within the field
	GoalOffset float64 = 150.0
	// GoalWidth is the width of the goal mouth
	GoalWidth float64 = 300.0
	// GoalHeight is the height of the goal area drawn above the goal line
	GoalHeight float64 = FieldHeight - GoalLineY

	// KeeperWidth is the width of the goalkeeper
	KeeperWidth float64 = 50.0
	// KeeperHeight is the height of the goalkeeper
	KeeperHeight float64 = 20.0
	// KeeperSpeed is the distance the keeper travels each tick
	KeeperSpeed float64 = 3.0
	// KeeperStartX is the keeper's centred position relative to the goal
	KeeperStartX float64 = (GoalWidth - KeeperWidth) / 2
	// KeeperMaxX is the right-most keeper position relative to the goal
	KeeperMaxX float64 = GoalWidth - KeeperWidth

	// ResetDelay is how long a resolved shot stays on screen before the next turn
	ResetDelay time.Duration = 2 * time.Second
	// DefaultTickInterval is the tick interval of the headless driver
	DefaultTickInterval time.Duration = time.Second / 60
)
