package scenes

import (
	"github.com/cbodonnell/penaltykick/client/objects"
	"github.com/cbodonnell/penaltykick/pkg/game/constants"
)

// ErrorScene shows a single message until the player returns to the menu.
type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string) (Scene, error) {
	return &ErrorScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-error", objects.NewTextOverlayOptions{
			Text: msg,
			Y:    constants.FieldHeight / 2,
		})),
	}, nil
}
