package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/veilui/veil/engine/core"
	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
)

// GLFWHost implements core.Host on a desktop window: it owns the RGBA4444
// surface the overlay draws into and presents it each frame as a textured
// fullscreen quad, alpha-blended over a backdrop standing in for the host
// application's output.
type GLFWHost struct {
	win     *glfw.Window
	surface *gfx.Surface
	pres    *presenter

	pressed   input.Keys // went down since the last Input() call
	held      input.Keys
	touch     input.Touch
	mouseDown bool
}

// NewGLFWHost must be called on the main thread before any GL work.
func NewGLFWHost(cfg core.Config) (*GLFWHost, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, err
	}

	pres, err := newPresenter(cfg.Width, cfg.Height)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("init presenter: %w", err)
	}

	h := &GLFWHost{
		win:     win,
		surface: gfx.NewSurface(cfg.Width, cfg.Height),
		pres:    pres,
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == 0 {
			return
		}
		switch action {
		case glfw.Press:
			h.pressed |= k
			h.held |= k
		case glfw.Release:
			h.held &^= k
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn == glfw.MouseButtonLeft {
			h.mouseDown = action == glfw.Press
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.touch.X, h.touch.Y = int32(x), int32(y)
	})

	return h, nil
}

// core.Host

func (h *GLFWHost) PollEvents()       { glfw.PollEvents() }
func (h *GLFWHost) ShouldClose() bool { return h.win.ShouldClose() }

func (h *GLFWHost) Input() input.State {
	st := input.State{
		Down: h.pressed,
		Held: h.held,
		Touch: input.Touch{
			X: h.touch.X, Y: h.touch.Y,
			Active: h.mouseDown,
		},
	}
	h.pressed = 0
	return st
}

func (h *GLFWHost) Begin() *gfx.Surface { return h.surface }

func (h *GLFWHost) End() {
	h.pres.present(h.surface)
	h.win.SwapBuffers()
}

func (h *GLFWHost) Shutdown() {
	h.pres.shutdown()
	h.win.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) input.Keys {
	switch k {
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyEnter:
		return input.KeyA
	case glfw.KeyBackspace:
		return input.KeyB
	case glfw.KeyEscape:
		return input.KeyPlus
	case glfw.KeyTab:
		return input.KeyX
	default:
		return 0
	}
}
