package common

// Key is a virtual key code. Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

// KeyNone marks an unset key binding (e.g. "no modifier required").
const KeyNone Key = 0

// Virtual key codes for cross-platform input handling.
const (
	KeyW         Key = 87  // W key (ASCII)
	KeyA         Key = 65  // A key (ASCII)
	KeyS         Key = 83  // S key (ASCII)
	KeyD         Key = 68  // D key (ASCII)
	KeyQ         Key = 81  // Q key (ASCII)
	KeyE         Key = 69  // E key (ASCII)
	KeyF         Key = 70  // F key (ASCII)
	KeyR         Key = 82  // R key (ASCII)
	KeySpace     Key = 32  // Spacebar (ASCII)
	KeyBackspace Key = 259 // Backspace key (GLFW)
	KeyEsc       Key = 256 // Escape key (GLFW)
)

// Modifier keys, used to gate orbit/pan bindings.
const (
	KeyLeftShift    Key = 340 // Left Shift (GLFW)
	KeyLeftControl  Key = 341 // Left Control (GLFW)
	KeyLeftAlt      Key = 342 // Left Alt (GLFW)
	KeyLeftSuper    Key = 343 // Left Super / Command (GLFW)
	KeyRightShift   Key = 344 // Right Shift (GLFW)
	KeyRightControl Key = 345 // Right Control (GLFW)
	KeyRightAlt     Key = 346 // Right Alt (GLFW)
	KeyRightSuper   Key = 347 // Right Super / Command (GLFW)
)

// MouseButton is a pointer button code. Values match GLFW mouse button numbering.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
	MouseButton4      MouseButton = 3
	MouseButton5      MouseButton = 4
)
