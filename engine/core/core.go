// Package core ties the element tree, renderer and host together: screens,
// the navigation stack, and the per-frame cycle.
package core

import (
	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
)

// Config for an overlay run. Width/Height are the framebuffer dimensions,
// which may exceed the logical UI rectangle.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// SurfaceProvider hands out the writable surface for the current frame and
// presents it once drawing is done.
type SurfaceProvider interface {
	Begin() *gfx.Surface
	End()
}

// InputSource supplies one input snapshot per frame. The core never polls
// hardware itself.
type InputSource interface {
	Input() input.State
}

// Host is the platform side of the frame loop: surface, input, event pump.
type Host interface {
	SurfaceProvider
	InputSource
	PollEvents()
	ShouldClose() bool
	Shutdown()
}

// ScreenFactory produces the initial screen when the stack is empty at
// startup. Returning nil leaves the overlay idle.
type ScreenFactory func(*Overlay) Screen
