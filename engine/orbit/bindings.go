package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// modifierHeld reports whether the binding's modifier is satisfied. KeyNone always is.
func modifierHeld(modifier common.Key, in *input.Snapshot) bool {
	return modifier == common.KeyNone || in.Keys.Pressed(modifier)
}

func comboPressed(button common.MouseButton, modifier common.Key, in *input.Snapshot) bool {
	return in.Mouse.Pressed(button) && modifierHeld(modifier, in)
}

// comboJustPressed fires when the button goes down with the modifier held, or the modifier goes
// down while the button is held.
func comboJustPressed(button common.MouseButton, modifier common.Key, in *input.Snapshot) bool {
	if modifier == common.KeyNone {
		return in.Mouse.JustPressed(button)
	}
	return (in.Mouse.JustPressed(button) && in.Keys.Pressed(modifier)) ||
		(in.Keys.JustPressed(modifier) && in.Mouse.Pressed(button))
}

// comboJustReleased fires when the button goes up while the modifier is (or was, this frame) held,
// or the modifier goes up while the button is held.
func comboJustReleased(button common.MouseButton, modifier common.Key, in *input.Snapshot) bool {
	if modifier == common.KeyNone {
		return in.Mouse.JustReleased(button)
	}
	modifierActive := in.Keys.Pressed(modifier) || in.Keys.JustReleased(modifier)
	return (in.Mouse.JustReleased(button) && modifierActive) ||
		(in.Keys.JustReleased(modifier) && in.Mouse.Pressed(button))
}

func (c *Controller) orbitPressed(in *input.Snapshot) bool {
	return comboPressed(c.ButtonOrbit, c.ModifierOrbit, in)
}

func (c *Controller) orbitJustPressed(in *input.Snapshot) bool {
	return comboJustPressed(c.ButtonOrbit, c.ModifierOrbit, in)
}

func (c *Controller) orbitJustReleased(in *input.Snapshot) bool {
	return comboJustReleased(c.ButtonOrbit, c.ModifierOrbit, in)
}

func (c *Controller) panPressed(in *input.Snapshot) bool {
	return comboPressed(c.ButtonPan, c.ModifierPan, in)
}

func (c *Controller) panJustPressed(in *input.Snapshot) bool {
	return comboJustPressed(c.ButtonPan, c.ModifierPan, in)
}

func (c *Controller) touchpadOrbitHeld(in *input.Snapshot) bool {
	return c.ModifierOrbitTouchpad != common.KeyNone && in.Keys.Pressed(c.ModifierOrbitTouchpad)
}
