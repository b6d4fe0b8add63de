package input

// ButtonInput tracks pressed, just-pressed and just-released state for a set of buttons or keys.
// "Just" states live for one frame: ClearFrame drops them after the frame has been consumed.
// The zero value is ready to use.
type ButtonInput[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// Press marks b as held. A button that was not already held also becomes just-pressed.
//
// Parameters:
//   - b: the button or key
func (bi *ButtonInput[T]) Press(b T) {
	if bi.pressed == nil {
		bi.pressed = make(map[T]struct{})
	}
	if _, held := bi.pressed[b]; held {
		return
	}
	bi.pressed[b] = struct{}{}
	if bi.justPressed == nil {
		bi.justPressed = make(map[T]struct{})
	}
	bi.justPressed[b] = struct{}{}
}

// Release marks b as no longer held. A button that was held also becomes just-released.
//
// Parameters:
//   - b: the button or key
func (bi *ButtonInput[T]) Release(b T) {
	if _, held := bi.pressed[b]; !held {
		return
	}
	delete(bi.pressed, b)
	if bi.justReleased == nil {
		bi.justReleased = make(map[T]struct{})
	}
	bi.justReleased[b] = struct{}{}
}

// Pressed reports whether b is currently held.
func (bi *ButtonInput[T]) Pressed(b T) bool {
	_, ok := bi.pressed[b]
	return ok
}

// JustPressed reports whether b went down during the current frame.
func (bi *ButtonInput[T]) JustPressed(b T) bool {
	_, ok := bi.justPressed[b]
	return ok
}

// JustReleased reports whether b went up during the current frame.
func (bi *ButtonInput[T]) JustReleased(b T) bool {
	_, ok := bi.justReleased[b]
	return ok
}

// ClearFrame drops the per-frame just-pressed / just-released state. Held buttons stay held.
func (bi *ButtonInput[T]) ClearFrame() {
	clear(bi.justPressed)
	clear(bi.justReleased)
}

// Reset releases everything without producing just-released events, e.g. when a window loses focus.
func (bi *ButtonInput[T]) Reset() {
	clear(bi.pressed)
	clear(bi.justPressed)
	clear(bi.justReleased)
}

// Clone returns a deep copy.
func (bi *ButtonInput[T]) Clone() ButtonInput[T] {
	return ButtonInput[T]{
		pressed:      cloneSet(bi.pressed),
		justPressed:  cloneSet(bi.justPressed),
		justReleased: cloneSet(bi.justReleased),
	}
}

func cloneSet[T comparable](src map[T]struct{}) map[T]struct{} {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[T]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}
