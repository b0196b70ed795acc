package core

import (
	"log"

	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
	"github.com/veilui/veil/engine/style"
	"github.com/veilui/veil/engine/text"
)

// Overlay owns the screen stack and the rendering context. Constructed once
// by the frame-loop driver and threaded explicitly; there is no process-wide
// instance.
type Overlay struct {
	cfg         Config
	renderer    *gfx.Renderer
	initial     ScreenFactory
	stack       []*Gui
	shouldClose bool
}

// NewOverlay builds the rendering context. A missing or unparseable font is
// not fatal: text degrades to invisible spacing rather than crashing the
// host's frame loop.
func NewOverlay(cfg Config, fontData []byte, initial ScreenFactory) *Overlay {
	glyphs := text.NewGlyphCache()
	if len(fontData) > 0 {
		if err := glyphs.Initialize(fontData); err != nil {
			log.Printf("font unavailable, text rendering disabled: %v", err)
		}
	}
	return &Overlay{
		cfg:      cfg,
		renderer: gfx.NewRenderer(glyphs),
		initial:  initial,
	}
}

func (o *Overlay) Config() Config          { return o.cfg }
func (o *Overlay) Renderer() *gfx.Renderer { return o.renderer }

// PushGui puts a new screen on top of the stack. The screen beneath stays
// alive and resumes when the new one is popped.
func (o *Overlay) PushGui(s Screen) *Gui {
	g := &Gui{overlay: o, screen: s}
	o.stack = append(o.stack, g)
	return g
}

// ChangeGui replaces the top screen: the current one is destroyed, not
// resumed later.
func (o *Overlay) ChangeGui(s Screen) *Gui {
	if n := len(o.stack); n > 0 {
		o.stack[n-1] = nil
		o.stack = o.stack[:n-1]
	}
	return o.PushGui(s)
}

// PopGui drops the top screen. Popping the last one requests close.
func (o *Overlay) PopGui() {
	if n := len(o.stack); n > 0 {
		o.stack[n-1] = nil
		o.stack = o.stack[:n-1]
	}
	if len(o.stack) == 0 {
		o.Close()
	}
}

func (o *Overlay) CurrentGui() *Gui {
	if len(o.stack) == 0 {
		return nil
	}
	return o.stack[len(o.stack)-1]
}

// Close marks the run loop for termination; the driver observes it at the
// top of the next iteration, never mid-frame.
func (o *Overlay) Close()            { o.shouldClose = true }
func (o *Overlay) ShouldClose() bool { return o.shouldClose }

// HandleInput routes this frame's snapshot to the top screen.
func (o *Overlay) HandleInput(st input.State) {
	if g := o.CurrentGui(); g != nil {
		g.handleInput(st)
	}
}

// Frame runs one cycle: seed the stack from the factory if empty, update the
// top screen, acquire the surface, clear, draw, present. With no screen and
// no factory result the frame does no work at all.
func (o *Overlay) Frame(sp SurfaceProvider) {
	if len(o.stack) == 0 {
		if o.initial == nil {
			return
		}
		s := o.initial(o)
		if s == nil {
			return
		}
		o.PushGui(s)
	}

	g := o.CurrentGui()
	g.update(int32(o.cfg.Width), int32(o.cfg.Height))

	surf := sp.Begin()
	if surf == nil {
		return
	}
	o.renderer.Bind(surf)
	surf.Fill(style.FrameBackground)
	g.draw(o.renderer)
	o.renderer.Unbind()
	sp.End()
}

// Shutdown drains the stack, releasing every owned screen.
func (o *Overlay) Shutdown() {
	for i := range o.stack {
		o.stack[i] = nil
	}
	o.stack = nil
}
