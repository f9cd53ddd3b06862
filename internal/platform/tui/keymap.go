package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// Cells the keyboard pointer moves per key press.
const (
	pointerStepX = 4
	pointerStepY = 2
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Direction keys move the frame's pointer instead of setting an action,
// so keyboard players steer the pads the same way mouse players do.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, width, height int) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		NudgePointer(&frame.Pointer, action, width, height)
	default:
		frame.Set(action)
	}
	return isQuit
}

// NudgePointer moves p one step in the direction of action, keeping it on
// a width x height screen. An unset pointer starts from the center.
func NudgePointer(p *core.Pointer, action core.Action, width, height int) {
	if !p.Set {
		p.X = float64(width / 2)
		p.Y = float64(height / 2)
		p.Set = true
	}

	switch action {
	case core.ActionUp:
		p.Y -= pointerStepY
	case core.ActionDown:
		p.Y += pointerStepY
	case core.ActionLeft:
		p.X -= pointerStepX
	case core.ActionRight:
		p.X += pointerStepX
	}

	p.X = float64(core.Clamp(int(p.X), 0, core.Max(width-1, 0)))
	p.Y = float64(core.Clamp(int(p.Y), 0, core.Max(height-1, 0)))
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
