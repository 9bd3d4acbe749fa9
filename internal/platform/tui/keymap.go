package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/babaam/internal/core"
)

// keyHoldTicks is how many simulation ticks a keypress stays asserted.
// Terminals deliver key repeats, not key-up events, so a short hold
// window bridges the gap between repeats and lets the simulation treat
// movement and the fire trigger as held buttons.
const keyHoldTicks = 4

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
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "1":
		return core.ActionWeapon1, false
	case "2":
		return core.ActionWeapon2, false
	case "3":
		return core.ActionWeapon3, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// heldKeys tracks per-action hold windows refreshed by key repeats.
type heldKeys struct {
	ticks map[core.Action]int
}

func newHeldKeys() *heldKeys {
	return &heldKeys{ticks: make(map[core.Action]int)}
}

// press refreshes the hold window for an action.
func (h *heldKeys) press(a core.Action) {
	h.ticks[a] = keyHoldTicks
}

// apply asserts all still-held actions on the frame and ages the windows
// by one tick.
func (h *heldKeys) apply(frame *core.InputFrame) {
	for a, t := range h.ticks {
		if t <= 0 {
			delete(h.ticks, a)
			continue
		}
		frame.Set(a)
		h.ticks[a] = t - 1
	}
}

// release drops all hold windows.
func (h *heldKeys) release() {
	clear(h.ticks)
}
