package tui

import (
	"time"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids"
)

// KeyInput samples terminal key events as simulation input.
// It implements roids.InputSource.
type KeyInput struct {
	keys    *core.KeyState
	buttons *core.ButtonController
	now     func() time.Time
}

// NewKeyInput creates an input source where a key stays held for hold after
// its last event.
func NewKeyInput(hold time.Duration) *KeyInput {
	return &KeyInput{
		keys:    core.NewKeyState(hold),
		buttons: core.NewButtonController(),
		now:     time.Now,
	}
}

// Press records a key event.
func (k *KeyInput) Press(a core.Action) {
	k.keys.Press(a, k.now())
}

// Reset releases every key.
func (k *KeyInput) Reset() {
	k.keys.Reset()
	k.buttons = core.NewButtonController()
}

// Poll takes the next sample.
func (k *KeyInput) Poll() roids.Input {
	k.buttons.Update(k.keys.Sample(k.now()))
	return roids.Input{
		Turn:   k.buttons.XTri(),
		Thrust: k.buttons.IsPressed(core.ActionThrust),
		Fire:   k.buttons.IsJustPressed(core.ActionFire),
	}
}
