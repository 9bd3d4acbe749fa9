package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation works with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move ship up
	ActionDown              // S, Down arrow - move ship down
	ActionLeft              // A, Left arrow - move ship left
	ActionRight             // D, Right arrow - move ship right
	ActionFire              // Space - fire/hold trigger of the equipped weapon
	ActionWeapon1           // 1 - select normal cannon
	ActionWeapon2           // 2 - select spread cannon
	ActionWeapon3           // 3 - select energy beam
	ActionConfirm           // Enter - confirm (initials entry, overlays)
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - end the run
	ActionPause             // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionWeapon1:
		return "Weapon1"
	case ActionWeapon2:
		return "Weapon2"
	case ActionWeapon3:
		return "Weapon3"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Movement and fire actions are level-triggered: present while held.
	Actions map[Action]bool

	// Keys holds the raw printable keystrokes received this frame, in
	// arrival order. Consumed by the cheat-code matcher.
	Keys []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PushKey records a raw keystroke for this frame.
func (f *InputFrame) PushKey(r rune) {
	f.Keys = append(f.Keys, r)
}

// Clear resets all actions and keystrokes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Keys = append(clone.Keys, f.Keys...)
	return clone
}
