package config

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

var buttonNames = map[string]common.MouseButton{
	"left":    common.MouseButtonLeft,
	"right":   common.MouseButtonRight,
	"middle":  common.MouseButtonMiddle,
	"back":    common.MouseButton4,
	"button4": common.MouseButton4,
	"forward": common.MouseButton5,
	"button5": common.MouseButton5,
}

var keyNames = map[string]common.Key{
	"":              common.KeyNone,
	"none":          common.KeyNone,
	"shift":         common.KeyLeftShift,
	"left_shift":    common.KeyLeftShift,
	"right_shift":   common.KeyRightShift,
	"ctrl":          common.KeyLeftControl,
	"control":       common.KeyLeftControl,
	"left_control":  common.KeyLeftControl,
	"right_control": common.KeyRightControl,
	"alt":           common.KeyLeftAlt,
	"left_alt":      common.KeyLeftAlt,
	"right_alt":     common.KeyRightAlt,
	"super":         common.KeyLeftSuper,
	"cmd":           common.KeyLeftSuper,
	"left_super":    common.KeyLeftSuper,
	"right_super":   common.KeyRightSuper,
	"space":         common.KeySpace,
	"w":             common.KeyW,
	"a":             common.KeyA,
	"s":             common.KeyS,
	"d":             common.KeyD,
	"q":             common.KeyQ,
	"e":             common.KeyE,
	"f":             common.KeyF,
	"r":             common.KeyR,
}

// ParseButton maps a button name ("left", "right", "middle", "back", "forward") to its code.
//
// Parameters:
//   - name: case-insensitive button name
//
// Returns:
//   - common.MouseButton: the button
//   - error: error if the name is unknown
func ParseButton(name string) (common.MouseButton, error) {
	b, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
	return b, nil
}

// ParseKey maps a key name ("shift", "ctrl", "alt", "super", ...) to its code. An empty name or
// "none" is KeyNone.
//
// Parameters:
//   - name: case-insensitive key name
//
// Returns:
//   - common.Key: the key
//   - error: error if the name is unknown
func ParseKey(name string) (common.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return common.KeyNone, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

var canonicalButtons = map[common.MouseButton]string{
	common.MouseButtonLeft:   "left",
	common.MouseButtonRight:  "right",
	common.MouseButtonMiddle: "middle",
	common.MouseButton4:      "back",
	common.MouseButton5:      "forward",
}

var canonicalKeys = map[common.Key]string{
	common.KeyLeftShift:    "shift",
	common.KeyRightShift:   "right_shift",
	common.KeyLeftControl:  "ctrl",
	common.KeyRightControl: "right_control",
	common.KeyLeftAlt:      "alt",
	common.KeyRightAlt:     "right_alt",
	common.KeyLeftSuper:    "super",
	common.KeyRightSuper:   "right_super",
	common.KeySpace:        "space",
	common.KeyW:            "w",
	common.KeyA:            "a",
	common.KeyS:            "s",
	common.KeyD:            "d",
	common.KeyQ:            "q",
	common.KeyE:            "e",
	common.KeyF:            "f",
	common.KeyR:            "r",
}

func buttonName(b common.MouseButton) string {
	return canonicalButtons[b]
}

// keyName returns "" for KeyNone and for keys without a name.
func keyName(k common.Key) string {
	return canonicalKeys[k]
}
