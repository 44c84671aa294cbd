package tui

import "github.com/gdamore/tcell/v2"

type Action int

const (
	ActionNone Action = iota
	ActionShoot
	ActionMute
	ActionQuit
)

// KeyAction maps a key press to an action.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionShoot
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ActionShoot
		case 'q', 'Q':
			return ActionQuit
		case 'm', 'M':
			return ActionMute
		}
	}
	return ActionNone
}
