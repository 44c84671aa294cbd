package game

import (
	"github.com/cbodonnell/penaltykick/pkg/collisions"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/solarlune/resolv"
)

// ResolveShot returns the outcome of a shot whose ball left edge is at
// ballX (field coordinates) when it reaches the goal line, with the keeper's
// left edge at keeperX (goal coordinates).
func ResolveShot(ballX float64, keeperX float64) types.Outcome {
	ball := resolv.NewObject(ballX, constants.GoalLineY, constants.BallWidth, constants.BallWidth, collisions.TagBall)
	keeper := resolv.NewObject(constants.GoalOffset+keeperX, constants.GoalLineY, constants.KeeperWidth, constants.KeeperHeight, collisions.TagGoalkeeper)
	return resolveObjects(ball, keeper)
}

// resolveObjects checks the keeper before the goal mouth, so a ball the
// keeper touches is saved even if it would have been on target.
func resolveObjects(ball *resolv.Object, keeper *resolv.Object) types.Outcome {
	if collisions.HorizontalOverlap(ball, keeper) {
		return types.OutcomeSaved
	}
	if collisions.HorizontallyOutside(ball, constants.GoalOffset, constants.GoalOffset+constants.GoalWidth) {
		return types.OutcomeMissed
	}
	return types.OutcomeGoal
}
