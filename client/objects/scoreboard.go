package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/penaltykick/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ScoreboardObject draws the goal and miss counters in the top left corner.
type ScoreboardObject struct {
	*BaseObject

	snapshot SnapshotFunc
}

func NewScoreboardObject(id string, snapshot SnapshotFunc) *ScoreboardObject {
	return &ScoreboardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		snapshot:   snapshot,
	}
}

func ScoreText(goals, misses int) string {
	return fmt.Sprintf("GOALS: %d  MISSES: %d", goals, misses)
}

func (o *ScoreboardObject) Draw(screen *ebiten.Image) {
	s := o.snapshot()
	text.Draw(screen, ScoreText(s.Goals, s.Misses), fonts.TTFSmallFont, 10, 22, color.White)
}
