package scenes

import (
	"image/color"

	"github.com/cbodonnell/penaltykick/client/fonts"
	"github.com/cbodonnell/penaltykick/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onKickOff func()
	muted     func() bool
	onMute    func(muted bool)
	ui        *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnKickOff is called when the kick off button is pressed.
	OnKickOff func()
	// Muted reports the current audio state for the mute toggle.
	Muted func() bool
	// OnMute is called when the mute toggle is pressed.
	OnMute func(muted bool)
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onKickOff: opts.OnKickOff,
		muted:     opts.Muted,
		onMute:    opts.OnMute,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
	buttonPadding := widget.Insets{
		Left:   30,
		Right:  30,
		Top:    5,
		Bottom: 5,
	}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
		Stretch:  true,
	})

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 46, G: 139, B: 87, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    100,
				Left:   150,
				Right:  150,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("PENALTY KICK", fonts.TTFLargeFont, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(centered),
	))

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Press space to shoot when the target lines up", fonts.MPlusNormalFont, color.NRGBA{R: 230, G: 230, B: 230, A: 255}),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(centered),
	))

	rootContainer.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Kick Off", fonts.TTFNormalFont, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.onKickOff != nil {
				s.onKickOff()
			}
		}),
	))

	if s.onMute != nil && s.muted != nil {
		label := "Sound: On"
		if s.muted() {
			label = "Sound: Off"
		}
		rootContainer.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fonts.TTFNormalFont, buttonTextColor),
			widget.ButtonOpts.TextPadding(buttonPadding),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.onMute(!s.muted())
				s.renderUI()
			}),
		))
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
