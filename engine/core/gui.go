package core

import (
	"github.com/veilui/veil/engine/input"
	"github.com/veilui/veil/engine/ui"
)

// Screen is the per-screen behavior a user implements. The owning Gui is
// passed to every hook; there is no globally reachable overlay state.
type Screen interface {
	// CreateUI builds the screen's element tree. Called once, on the first
	// frame the screen is on top.
	CreateUI(g *Gui) ui.Element
	// Update runs per-frame logic after the tree exists.
	Update(g *Gui)
	// HandleInput reacts to this frame's input snapshot. Returning false
	// falls through to the default navigation handling.
	HandleInput(g *Gui, st input.State) bool
}

// Gui is one navigable unit of UI: a lazily built root tree plus the focus
// pointer into it. The focus pointer is a relation, never ownership — the
// tree governs the focused element's lifetime.
type Gui struct {
	overlay *Overlay
	screen  Screen
	root    ui.Element
	focused ui.Element
}

func (g *Gui) Overlay() *Overlay          { return g.overlay }
func (g *Gui) Root() ui.Element           { return g.root }
func (g *Gui) FocusedElement() ui.Element { return g.focused }

// RequestFocus moves focus to el: the previous holder's flag is cleared
// first, so at most one element in the tree is focused at any time.
func (g *Gui) RequestFocus(el ui.Element, dir ui.FocusDirection) {
	if g.focused != nil {
		g.focused.Node().SetFocused(false)
	}
	g.focused = el
	if g.focused != nil {
		g.focused.Node().SetFocused(true)
	}
}

// MoveFocus asks the tree for the element in the given direction from the
// current focus and transfers to it.
func (g *Gui) MoveFocus(dir ui.FocusDirection) {
	if g.root == nil {
		return
	}
	next := g.root.RequestFocusFrom(g.focused, dir)
	if next != nil && next != g.focused {
		g.RequestFocus(next, dir)
	}
}

// update performs the unbuilt -> built transition on first call, then runs
// the screen's per-frame hook.
func (g *Gui) update(fbWidth, fbHeight int32) {
	if g.root == nil {
		g.root = g.screen.CreateUI(g)
		if g.root != nil {
			g.root.Layout(0, 0, fbWidth, fbHeight)
			if g.focused == nil {
				g.MoveFocus(ui.FocusNone)
			}
		}
	}
	g.screen.Update(g)
}

func (g *Gui) draw(r ui.Renderer) {
	if g.root != nil {
		ui.Frame(g.root, r)
	}
}

// handleInput gives the screen first refusal, then applies the default
// bindings: d-pad moves focus, A activates, B goes back.
func (g *Gui) handleInput(st input.State) bool {
	if g.screen.HandleInput(g, st) {
		return true
	}
	switch {
	case st.Down.Has(input.KeyUp):
		g.MoveFocus(ui.FocusUp)
		return true
	case st.Down.Has(input.KeyDown):
		g.MoveFocus(ui.FocusDown)
		return true
	case st.Down.Has(input.KeyA):
		if g.focused != nil {
			return g.focused.OnClick(st.Down)
		}
	case st.Down.Has(input.KeyB):
		g.overlay.PopGui()
		return true
	}
	return false
}
