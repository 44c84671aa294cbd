package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/penaltykick/client/audio"
	"github.com/cbodonnell/penaltykick/client/fonts"
	"github.com/cbodonnell/penaltykick/client/input"
	"github.com/cbodonnell/penaltykick/client/objects"
	"github.com/cbodonnell/penaltykick/pkg/game"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// OutcomeEffectTTL is how long the floating outcome label stays up.
	OutcomeEffectTTL = 1500 * time.Millisecond
)

// PenaltyScene drives a game.Game once per frame and draws it.
type PenaltyScene struct {
	*BaseScene

	game     *game.Game
	sound    *audio.SoundManager
	pitch    *objects.PitchObject
	message  *objects.TextOverlayObject
	snapshot types.Snapshot
}

type PenaltySceneOptions struct {
	// Game is the game to drive. Defaults to a new game.
	Game *game.Game
	// Sound plays event cues. Optional.
	Sound *audio.SoundManager
}

var _ Scene = &PenaltyScene{}

func NewPenaltyScene(opts PenaltySceneOptions) (Scene, error) {
	g := opts.Game
	if g == nil {
		g = game.NewGame(game.NewGameOptions{})
	}
	s := &PenaltyScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("penalty-root")),
		game:      g,
		sound:     opts.Sound,
		pitch:     objects.NewPitchObject("pitch"),
		message: objects.NewTextOverlayObject("message", objects.NewTextOverlayOptions{
			Y:      constants.FieldHeight / 2,
			ZIndex: 11,
		}),
	}
	s.snapshot = g.Snapshot()
	return s, nil
}

func (s *PenaltyScene) Init() error {
	current := func() types.Snapshot { return s.snapshot }
	children := []objects.GameObject{
		s.pitch,
		objects.NewTargetObject("target", current),
		objects.NewGoalkeeperObject("goalkeeper", current),
		objects.NewBallObject("ball", current),
		objects.NewScoreboardObject("scoreboard", current),
		s.message,
		objects.NewTextOverlayObject("hint", objects.NewTextOverlayOptions{
			Text:   "Esc: menu   M: mute",
			Y:      constants.FieldHeight - 10,
			Face:   fonts.TTFSmallFont,
			Color:  color.NRGBA{R: 220, G: 220, B: 220, A: 200},
			ZIndex: 10,
		}),
	}
	for _, child := range children {
		if err := s.GetRoot().AddChild(child.GetID(), child); err != nil {
			return fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}
	s.message.SetText(s.snapshot.Message(), objects.MessageColor(s.snapshot))
	return s.BaseScene.Init()
}

// Destroy closes the game so a pending reset cannot fire after the scene
// is gone.
func (s *PenaltyScene) Destroy() error {
	s.game.Close()
	return s.BaseScene.Destroy()
}

func (s *PenaltyScene) Update() error {
	if input.IsShootJustPressed() {
		s.handleEvents(s.game.Shoot())
	}
	if s.sound != nil && input.IsMuteJustPressed() {
		s.sound.SetMuted(!s.sound.Muted())
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	s.handleEvents(s.game.Update(dt))

	s.snapshot = s.game.Snapshot()
	s.message.SetText(s.snapshot.Message(), objects.MessageColor(s.snapshot))

	return s.BaseScene.Update()
}

func (s *PenaltyScene) handleEvents(events []types.Event) {
	for _, event := range events {
		switch e := event.(type) {
		case types.ShootEvent:
			if s.sound != nil {
				s.sound.HandleShoot(e)
			}
		case types.OutcomeEvent:
			s.spawnOutcomeEffect(e)
			if s.sound != nil {
				s.sound.HandleOutcome(e)
			}
		case types.CelebrationEvent:
			s.pitch.SetCelebrating(true)
			if s.sound != nil {
				s.sound.HandleCelebration(e)
			}
		case types.ResetEvent:
			s.pitch.SetCelebrating(false)
		default:
			log.Warn("Unhandled game event: %T", event)
		}
	}
}

func (s *PenaltyScene) spawnOutcomeEffect(e types.OutcomeEvent) {
	id := fmt.Sprintf("outcome-%s", e.ShotID)
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   e.Outcome.String(),
		X:      e.BallX + constants.BallWidth/2,
		Y:      constants.GoalLineY - 40,
		Color:  objects.OutcomeColor(e.Outcome),
		Scroll: true,
		TTL:    OutcomeEffectTTL,
		ZIndex: 5,
	})
	if err := s.GetRoot().AddChild(id, effect); err != nil {
		log.Error("Failed to add outcome effect: %v", err)
	}
}

// Snapshot returns the state drawn in the last frame.
func (s *PenaltyScene) Snapshot() types.Snapshot {
	return s.snapshot
}
