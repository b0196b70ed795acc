// Package term is a development host that presents the overlay surface in a
// terminal, two pixels per cell via the upper-half-block glyph. Useful on
// machines without a GL stack; implements the same core.Host contract.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/veilui/veil/engine/core"
	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
)

// backdrop stands in for the host application beneath the overlay.
const backdropR, backdropG, backdropB = 40, 44, 48

type Host struct {
	screen  tcell.Screen
	surface *gfx.Surface
	events  chan tcell.Event

	pressed input.Keys
	touch   input.Touch
	closed  bool
}

func NewHost(cfg core.Config) (*Host, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()

	h := &Host{
		screen:  s,
		surface: gfx.NewSurface(cfg.Width, cfg.Height),
		events:  make(chan tcell.Event, 64),
	}

	// tcell's PollEvent blocks, so a feeder goroutine bridges it to the
	// synchronous frame loop. The core itself stays single-threaded.
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			h.events <- ev
		}
	}()

	return h, nil
}

// core.Host

func (h *Host) PollEvents() {
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			h.pressed |= input.KeyUp
		case tcell.KeyDown:
			h.pressed |= input.KeyDown
		case tcell.KeyLeft:
			h.pressed |= input.KeyLeft
		case tcell.KeyRight:
			h.pressed |= input.KeyRight
		case tcell.KeyEnter:
			h.pressed |= input.KeyA
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			h.pressed |= input.KeyB
		case tcell.KeyEscape, tcell.KeyCtrlC:
			h.closed = true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				h.closed = true
			}
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			h.touch = input.Touch{X: int32(cx), Y: int32(cy * 2), Active: true}
		} else {
			h.touch.Active = false
		}
	}
}

func (h *Host) Input() input.State {
	st := input.State{
		Down:  h.pressed,
		Held:  h.pressed,
		Touch: h.touch,
	}
	h.pressed = 0
	return st
}

func (h *Host) ShouldClose() bool { return h.closed }

func (h *Host) Begin() *gfx.Surface { return h.surface }

// End composites the surface over the backdrop and pushes it to the
// terminal, one cell per 1x2 pixel column.
func (h *Host) End() {
	cols, rows := h.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if cx >= h.surface.W || cy*2 >= h.surface.H {
				continue
			}
			top := composite(h.surface.At(cx, cy*2))
			bottom := composite(h.surface.At(cx, cy*2+1))
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	h.screen.Show()
}

func (h *Host) Shutdown() { h.screen.Fini() }

// composite blends the 4-bit pixel over the backdrop and widens to 8 bits.
func composite(c gfx.Color) tcell.Color {
	r, g, b, a := c.RGBA8()
	inv := 255 - int32(a)
	return tcell.NewRGBColor(
		(int32(r)*int32(a)+backdropR*inv)/255,
		(int32(g)*int32(a)+backdropG*inv)/255,
		(int32(b)*int32(a)+backdropB*inv)/255,
	)
}
