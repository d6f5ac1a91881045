package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // A, Left arrow
	ActionTurnRight        // D, Right arrow
	ActionThrust           // W, Up arrow
	ActionFire             // Space, J
	ActionPause            // P
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held at one sample.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyState turns key events into held actions. Terminals report presses and
// auto-repeats but never releases, so an action counts as held until holdFor
// passes without another event for it.
type KeyState struct {
	holdFor  time.Duration
	lastSeen map[Action]time.Time
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(holdFor time.Duration) *KeyState {
	return &KeyState{
		holdFor:  holdFor,
		lastSeen: make(map[Action]time.Time),
	}
}

// Press records a key event for an action.
func (k *KeyState) Press(a Action, now time.Time) {
	if a == ActionNone {
		return
	}
	k.lastSeen[a] = now
}

// Release forgets an action immediately.
func (k *KeyState) Release(a Action) {
	delete(k.lastSeen, a)
}

// Reset forgets every action.
func (k *KeyState) Reset() {
	clear(k.lastSeen)
}

// Sample returns the actions held at now.
func (k *KeyState) Sample(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a, seen := range k.lastSeen {
		if now.Sub(seen) <= k.holdFor {
			frame.Set(a)
		}
	}
	return frame
}

// ButtonController keeps the current and previous samples so presses can be
// told apart from holds.
type ButtonController struct {
	previous InputFrame
	current  InputFrame
}

// NewButtonController creates a controller with nothing held.
func NewButtonController() *ButtonController {
	return &ButtonController{
		previous: NewInputFrame(),
		current:  NewInputFrame(),
	}
}

// Update advances to a new sample.
func (b *ButtonController) Update(frame InputFrame) {
	b.previous = b.current
	b.current = frame
}

// IsPressed reports whether a is held in the current sample.
func (b *ButtonController) IsPressed(a Action) bool {
	return b.current.Has(a)
}

// IsJustPressed reports whether a is held now but was not in the previous sample.
func (b *ButtonController) IsJustPressed(a Action) bool {
	return b.current.Has(a) && !b.previous.Has(a)
}

// XTri returns the horizontal axis: -1 for left, 1 for right, 0 for neither or both.
func (b *ButtonController) XTri() int {
	x := 0
	if b.current.Has(ActionTurnLeft) {
		x--
	}
	if b.current.Has(ActionTurnRight) {
		x++
	}
	return x
}
