// Package ui is the retained element tree an overlay screen draws each
// frame: a small, closed set of widgets laid out against the surface bounds
// and painted through a Renderer.
package ui

import (
	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
	"github.com/veilui/veil/engine/style"
)

// Renderer is the subset of the drawing API the tree needs. engine/gfx
// implements it; tests substitute a recorder.
type Renderer interface {
	DrawRect(x, y, w, h int32, c gfx.Color)
	DrawString(s string, monospace bool, x, y int32, fontSize uint32, c gfx.Color)
	TextDimensions(s string, monospace bool, fontSize uint32) (w, h int32)
}

type FocusDirection int

const (
	FocusNone FocusDirection = iota
	FocusUp
	FocusDown
	FocusLeft
	FocusRight
)

// Element is one node of the tree. The widget vocabulary is deliberately
// closed: List, OverlayFrame, ListItem, CustomDrawer.
type Element interface {
	Node() *Node
	// Layout assigns the node's bounds within the parent region. The base
	// behavior is to occupy exactly the given rectangle; composites lay out
	// their children in sub-regions.
	Layout(x, y, w, h int32)
	Draw(r Renderer)
	// RequestFocus returns the element that should take focus when
	// navigating in dir; leaves return themselves.
	RequestFocus(dir FocusDirection) Element
	RequestFocusFrom(old Element, dir FocusDirection) Element
	OnClick(keys input.Keys) bool
}

// Node carries the state every element shares: bounds in surface pixels, the
// focus and selectable flags, and a non-owning back-reference to the parent.
// Ownership always runs parent to child; the parent pointer exists only so
// Invalidate can walk upward.
type Node struct {
	x, y, w, h int32
	focused    bool
	selectable bool
	parent     Element
}

func (n *Node) X() int32      { return n.x }
func (n *Node) Y() int32      { return n.y }
func (n *Node) Width() int32  { return n.w }
func (n *Node) Height() int32 { return n.h }

func (n *Node) SetBounds(x, y, w, h int32) {
	n.x, n.y, n.w, n.h = x, y, w, h
}

func (n *Node) SetHeight(h int32) { n.h = h }

func (n *Node) Focused() bool           { return n.focused }
func (n *Node) SetFocused(focused bool) { n.focused = focused }

func (n *Node) Selectable() bool       { return n.selectable }
func (n *Node) SetSelectable(sel bool) { n.selectable = sel }

func (n *Node) Parent() Element          { return n.parent }
func (n *Node) SetParent(parent Element) { n.parent = parent }

// Invalidate propagates the redraw request up the parent chain; the root
// terminates it (the whole tree is repainted every frame anyway).
func (n *Node) Invalidate() {
	if n.parent != nil {
		n.parent.Node().Invalidate()
	}
}

// Base supplies the leaf defaults. Concrete widgets embed it and override
// what they need.
type Base struct {
	node Node
}

func (b *Base) Node() *Node { return &b.node }

func (b *Base) Layout(x, y, w, h int32) { b.node.SetBounds(x, y, w, h) }

func (b *Base) Draw(r Renderer) {}

func (b *Base) OnClick(keys input.Keys) bool { return false }

// Frame paints e for this frame: the highlight outline first when e is the
// focused selectable item, then the element itself.
func Frame(e Element, r Renderer) {
	n := e.Node()
	if n.Focused() && n.Selectable() {
		r.DrawRect(n.X()-2, n.Y()-2, n.Width()+4, n.Height()+4, style.Highlight)
	}
	e.Draw(r)
}
