package ui

import (
	"github.com/veilui/veil/engine/input"
	"github.com/veilui/veil/engine/style"
)

const (
	listItemFontSize  = 23
	listItemValueSize = 20
	listItemTextY     = 45
)

// ListItem is a selectable row: a label, an optional trailing value, and a
// click callback fired on activation.
type ListItem struct {
	Base
	text    string
	value   string
	onClick func() bool
}

func NewListItem(text string) *ListItem {
	item := &ListItem{text: text}
	item.node.SetSelectable(true)
	item.node.SetHeight(style.ListItemDefaultHeight)
	return item
}

func (i *ListItem) Text() string { return i.text }

func (i *ListItem) SetText(text string) {
	i.text = text
	i.node.Invalidate()
}

func (i *ListItem) Value() string { return i.value }

func (i *ListItem) SetValue(value string) {
	i.value = value
	i.node.Invalidate()
}

// SetClickListener registers the activation handler; its return value
// reports whether the click was consumed.
func (i *ListItem) SetClickListener(fn func() bool) { i.onClick = fn }

func (i *ListItem) Draw(r Renderer) {
	n := &i.node
	r.DrawRect(n.X(), n.Y(), n.Width(), 1, style.Frame)
	r.DrawRect(n.X(), n.Y()+n.Height()-1, n.Width(), 1, style.Frame)

	r.DrawString(i.text, false, n.X(), n.Y()+listItemTextY, listItemFontSize, style.Text)

	if i.value != "" {
		vw, _ := r.TextDimensions(i.value, false, listItemValueSize)
		r.DrawString(i.value, false, n.X()+n.Width()-vw-itemGutter, n.Y()+listItemTextY, listItemValueSize, style.Description)
	}
}

func (i *ListItem) RequestFocus(dir FocusDirection) Element { return i }

func (i *ListItem) RequestFocusFrom(old Element, dir FocusDirection) Element {
	return i.RequestFocus(dir)
}

func (i *ListItem) OnClick(keys input.Keys) bool {
	if keys.Has(input.KeyA) && i.onClick != nil {
		return i.onClick()
	}
	return false
}

// CustomDrawer hands its laid-out rectangle to a closure. Handy for one-off
// visuals that don't warrant a widget type.
type CustomDrawer struct {
	Base
	draw func(r Renderer, x, y, w, h int32)
}

func NewCustomDrawer(height int32, draw func(r Renderer, x, y, w, h int32)) *CustomDrawer {
	d := &CustomDrawer{draw: draw}
	d.node.SetHeight(height)
	return d
}

func (d *CustomDrawer) Draw(r Renderer) {
	if d.draw != nil {
		n := &d.node
		d.draw(r, n.X(), n.Y(), n.Width(), n.Height())
	}
}

func (d *CustomDrawer) RequestFocus(dir FocusDirection) Element { return d }

func (d *CustomDrawer) RequestFocusFrom(old Element, dir FocusDirection) Element {
	return d
}
