// Package ebitenhost feeds an input.Collector from ebiten's polling input API, for games that run on
// ebiten instead of a glfw window.
package ebitenhost

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = map[ebiten.MouseButton]common.MouseButton{
	ebiten.MouseButtonLeft:   common.MouseButtonLeft,
	ebiten.MouseButtonRight:  common.MouseButtonRight,
	ebiten.MouseButtonMiddle: common.MouseButtonMiddle,
	ebiten.MouseButton3:      common.MouseButton4,
	ebiten.MouseButton4:      common.MouseButton5,
}

var keys = map[ebiten.Key]common.Key{
	ebiten.KeyW:            common.KeyW,
	ebiten.KeyA:            common.KeyA,
	ebiten.KeyS:            common.KeyS,
	ebiten.KeyD:            common.KeyD,
	ebiten.KeyQ:            common.KeyQ,
	ebiten.KeyE:            common.KeyE,
	ebiten.KeyF:            common.KeyF,
	ebiten.KeyR:            common.KeyR,
	ebiten.KeySpace:        common.KeySpace,
	ebiten.KeyBackspace:    common.KeyBackspace,
	ebiten.KeyEscape:       common.KeyEsc,
	ebiten.KeyShiftLeft:    common.KeyLeftShift,
	ebiten.KeyShiftRight:   common.KeyRightShift,
	ebiten.KeyControlLeft:  common.KeyLeftControl,
	ebiten.KeyControlRight: common.KeyRightControl,
	ebiten.KeyAltLeft:      common.KeyLeftAlt,
	ebiten.KeyAltRight:     common.KeyRightAlt,
	ebiten.KeyMetaLeft:     common.KeyLeftSuper,
	ebiten.KeyMetaRight:    common.KeyRightSuper,
}

// Poller copies ebiten's input state into a Collector. Call Poll once at the start of every
// ebiten Game.Update, before draining the collector.
type Poller struct {
	collector *input.Collector
	window    common.WindowID

	// layoutWidth and layoutHeight override the reported window size when the game renders to a
	// fixed logical screen. Zero means use ebiten.WindowSize.
	layoutWidth  int
	layoutHeight int
}

// NewPoller creates a Poller that reports everything as happening in the given window.
//
// Parameters:
//   - collector: the collector to feed
//   - window: the id cameras use for the ebiten window
//
// Returns:
//   - *Poller: the poller
func NewPoller(collector *input.Collector, window common.WindowID) *Poller {
	collector.SetPrimaryWindow(window)
	return &Poller{collector: collector, window: window}
}

// SetLayout fixes the logical screen size, matching what the game returns from Layout.
func (p *Poller) SetLayout(width, height int) {
	p.layoutWidth = width
	p.layoutHeight = height
}

// Poll reads this tick's ebiten input.
func (p *Poller) Poll() {
	w, h := p.layoutWidth, p.layoutHeight
	if w == 0 || h == 0 {
		w, h = ebiten.WindowSize()
	}
	p.collector.ResizeWindow(p.window, float32(w), float32(h))

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < w && my < h {
		p.collector.MoveCursor(p.window, float32(mx), float32(my))
	} else {
		p.collector.LeaveWindow(p.window)
	}

	for eb, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			p.collector.PressButton(b)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			p.collector.ReleaseButton(b)
		}
	}
	for eb, k := range keys {
		if inpututil.IsKeyJustPressed(eb) {
			p.collector.PressKey(k)
		}
		if inpututil.IsKeyJustReleased(eb) {
			p.collector.ReleaseKey(k)
		}
	}

	// ebiten reports wheel offsets in notches on every platform.
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		p.collector.Scroll(input.ScrollLine, float32(dx), float32(dy))
	}
}
