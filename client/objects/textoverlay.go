package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/penaltykick/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a line of text horizontally centred at a fixed
// height. The text and colour may change every frame.
type TextOverlayObject struct {
	*BaseObject

	text  string
	y     float64
	face  font.Face
	color color.Color
}

type NewTextOverlayOptions struct {
	// Text is the initial text.
	Text string
	// Y is the baseline in screen coordinates.
	Y float64
	// Face defaults to fonts.TTFLargeFont.
	Face font.Face
	// Color defaults to white.
	Color color.Color
	// ZIndex is the z-index of the overlay.
	ZIndex int
}

func NewTextOverlayObject(id string, opts NewTextOverlayOptions) *TextOverlayObject {
	face := opts.Face
	if face == nil {
		face = fonts.TTFLargeFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		y:          opts.Y,
		face:       face,
		color:      clr,
	}
}

func (o *TextOverlayObject) SetText(t string, clr color.Color) {
	o.text = t
	o.color = clr
}

func (o *TextOverlayObject) Text() string {
	return o.text
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	bounds, _ := font.BoundString(o.face, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, t, o.face, op)
}
