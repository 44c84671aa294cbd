package objects

import (
	"image/color"

	"github.com/cbodonnell/penaltykick/pkg/collisions"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// SnapshotFunc returns the state to draw this frame.
type SnapshotFunc func() types.Snapshot

var (
	grassColor       = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	lineColor        = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	netColor         = color.RGBA{R: 220, G: 220, B: 220, A: 90}
	celebrationColor = color.RGBA{R: 255, G: 215, B: 0, A: 140}
	targetColor      = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	ballColor        = color.White
	keeperColor      = color.RGBA{R: 30, G: 90, B: 200, A: 255}
)

// ScreenY converts a field y (measured up from the bottom edge) of a box of
// height h to the screen y of its top edge.
func ScreenY(y, h float64) float32 {
	return float32(constants.FieldHeight - y - h)
}

// PitchObject draws the grass, the penalty spot and the goal. Goal geometry
// comes from the static objects of a field collision space.
type PitchObject struct {
	*BaseObject

	space       *resolv.Space
	celebrating bool
}

func NewPitchObject(id string) *PitchObject {
	return &PitchObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 0}),
		space:      collisions.NewFieldSpace(),
	}
}

// SetCelebrating highlights the goal mouth.
func (o *PitchObject) SetCelebrating(celebrating bool) {
	o.celebrating = celebrating
}

func (o *PitchObject) Celebrating() bool {
	return o.celebrating
}

func (o *PitchObject) Draw(screen *ebiten.Image) {
	screen.Fill(grassColor)

	spotX := float32(constants.BallStartX + constants.BallWidth/2)
	vector.DrawFilledCircle(screen, spotX, ScreenY(constants.SpotY, 0), 3, lineColor, false)

	for _, obj := range o.space.Objects() {
		x, y := float32(obj.Position.X), ScreenY(obj.Position.Y, obj.Size.Y)
		w, h := float32(obj.Size.X), float32(obj.Size.Y)
		switch {
		case obj.HasTags(collisions.TagGoal):
			fill := color.Color(netColor)
			if o.celebrating {
				fill = celebrationColor
			}
			vector.DrawFilledRect(screen, x, y, w, h, fill, false)
			// goal line under the mouth
			vector.StrokeLine(screen, x, y+h, x+w, y+h, 2, lineColor, false)
		case obj.HasTags(collisions.TagPost):
			vector.DrawFilledRect(screen, x, y, w, h, lineColor, false)
		}
	}
}

// TargetObject draws the oscillating aim marker along the bottom edge.
type TargetObject struct {
	*BaseObject

	snapshot SnapshotFunc
}

func NewTargetObject(id string, snapshot SnapshotFunc) *TargetObject {
	return &TargetObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 1}),
		snapshot:   snapshot,
	}
}

func (o *TargetObject) Draw(screen *ebiten.Image) {
	s := o.snapshot()
	x := float32(s.TargetX)
	w := float32(constants.TargetWidth)
	vector.DrawFilledRect(screen, x, ScreenY(0, constants.TargetWidth), w, w, targetColor, false)
	vector.StrokeLine(screen, x+w/2, ScreenY(constants.TargetWidth, 0), x+w/2, ScreenY(constants.GoalLineY, 0), 1, color.RGBA{R: 220, G: 40, B: 40, A: 60}, false)
}

type GoalkeeperObject struct {
	*BaseObject

	snapshot SnapshotFunc
}

func NewGoalkeeperObject(id string, snapshot SnapshotFunc) *GoalkeeperObject {
	return &GoalkeeperObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 2}),
		snapshot:   snapshot,
	}
}

func (o *GoalkeeperObject) Draw(screen *ebiten.Image) {
	s := o.snapshot()
	vector.DrawFilledRect(
		screen,
		float32(s.GoalkeeperAbsoluteX()),
		ScreenY(constants.GoalLineY, constants.KeeperHeight),
		float32(constants.KeeperWidth),
		float32(constants.KeeperHeight),
		keeperColor,
		false,
	)
}

type BallObject struct {
	*BaseObject

	snapshot SnapshotFunc
}

func NewBallObject(id string, snapshot SnapshotFunc) *BallObject {
	return &BallObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 3}),
		snapshot:   snapshot,
	}
}

func (o *BallObject) Draw(screen *ebiten.Image) {
	s := o.snapshot()
	r := float32(constants.BallWidth / 2)
	cx := float32(s.BallX) + r
	cy := ScreenY(s.BallY, constants.BallWidth) + r
	vector.DrawFilledCircle(screen, cx, cy, r, ballColor, true)
	vector.StrokeCircle(screen, cx, cy, r, 1, color.Black, true)
}
