package ui

import (
	"testing"

	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
	"github.com/veilui/veil/engine/style"
)

// recorder captures draw calls so tests can assert what the tree paints
// without a real surface.
type drawOp struct {
	kind       string // "rect" or "string"
	x, y, w, h int32
	s          string
	size       uint32
	color      gfx.Color
}

type recorder struct {
	ops []drawOp
}

func (r *recorder) DrawRect(x, y, w, h int32, c gfx.Color) {
	r.ops = append(r.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recorder) DrawString(s string, monospace bool, x, y int32, size uint32, c gfx.Color) {
	r.ops = append(r.ops, drawOp{kind: "string", x: x, y: y, s: s, size: size, color: c})
}

func (r *recorder) TextDimensions(s string, monospace bool, size uint32) (int32, int32) {
	return int32(len(s)) * int32(size) / 2, int32(size)
}

func fixedItem(h int32) *CustomDrawer {
	return NewCustomDrawer(h, nil)
}

func TestBaseLayoutOccupiesGivenRect(t *testing.T) {
	d := fixedItem(10)
	d.Layout(5, 6, 70, 80)
	n := d.Node()
	if n.X() != 5 || n.Y() != 6 || n.Width() != 70 || n.Height() != 80 {
		t.Errorf("bounds = (%d,%d,%d,%d)", n.X(), n.Y(), n.Width(), n.Height())
	}
}

func TestListLayoutStacksChildren(t *testing.T) {
	tests := []struct {
		name   string
		scroll int32
	}{
		{"no scroll", 0},
		{"scrolled down", 25},
		{"scrolled up", -40},
	}

	heights := []int32{70, 30, 50}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewList()
			items := make([]*CustomDrawer, len(heights))
			for i, h := range heights {
				items[i] = fixedItem(h)
				list.AddItem(items[i])
			}
			list.SetScrollOffset(tt.scroll)

			const x, y, w, h = 100, 200, 600, 400
			list.Layout(x, y, w, h)

			wantY := int32(y) - tt.scroll
			for i, item := range items {
				n := item.Node()
				if n.Y() != wantY {
					t.Errorf("item %d y = %d, want %d", i, n.Y(), wantY)
				}
				if n.X() != x+itemGutter {
					t.Errorf("item %d x = %d, want %d", i, n.X(), int32(x+itemGutter))
				}
				if n.Width() != w {
					t.Errorf("item %d width = %d, want %d", i, n.Width(), int32(w))
				}
				if n.Height() != heights[i] {
					t.Errorf("item %d height = %d, want %d", i, n.Height(), heights[i])
				}
				wantY += heights[i]
			}
		})
	}
}

func TestListOwnsChildrenAsParent(t *testing.T) {
	list := NewList()
	item := NewListItem("entry")
	list.AddItem(item)

	if item.Node().Parent() != Element(list) {
		t.Error("AddItem did not set the parent back-reference")
	}
	// Invalidate walks to the root without faulting.
	item.Node().Invalidate()
}

func TestListFocusWalk(t *testing.T) {
	list := NewList()
	first := NewListItem("first")
	spacer := fixedItem(20) // not selectable
	second := NewListItem("second")
	third := NewListItem("third")
	list.AddItem(first)
	list.AddItem(spacer)
	list.AddItem(second)
	list.AddItem(third)

	if got := list.RequestFocus(FocusNone); got != Element(first) {
		t.Errorf("FocusNone = %v, want first item", got)
	}
	if got := list.RequestFocusFrom(first, FocusDown); got != Element(second) {
		t.Error("FocusDown from first should skip the spacer to second")
	}
	if got := list.RequestFocusFrom(second, FocusUp); got != Element(first) {
		t.Error("FocusUp from second should skip the spacer to first")
	}
	if got := list.RequestFocusFrom(third, FocusDown); got != Element(third) {
		t.Error("FocusDown at the end should keep the old focus")
	}
	if got := list.RequestFocusFrom(first, FocusUp); got != Element(first) {
		t.Error("FocusUp at the start should keep the old focus")
	}
}

func TestFrameHighlightsFocusedSelectable(t *testing.T) {
	item := NewListItem("entry")
	item.Layout(40, 100, 500, 70)

	rec := &recorder{}
	Frame(item, rec)

	if len(rec.ops) == 0 || rec.ops[0].kind != "rect" {
		t.Fatal("expected draw calls starting with the separator rects")
	}
	for _, op := range rec.ops {
		if op.color == style.Highlight {
			t.Fatal("unfocused item painted a highlight")
		}
	}

	item.Node().SetFocused(true)
	rec = &recorder{}
	Frame(item, rec)

	hl := rec.ops[0]
	if hl.kind != "rect" || hl.color != style.Highlight {
		t.Fatalf("first op = %+v, want highlight rect", hl)
	}
	if hl.x != 38 || hl.y != 98 || hl.w != 504 || hl.h != 74 {
		t.Errorf("highlight = (%d,%d,%d,%d), want 2px inset beyond (40,100,500,70)",
			hl.x, hl.y, hl.w, hl.h)
	}
}

func TestFrameNoHighlightForUnselectable(t *testing.T) {
	d := fixedItem(50)
	d.Layout(0, 0, 100, 50)
	d.Node().SetFocused(true)

	rec := &recorder{}
	Frame(d, rec)
	if len(rec.ops) != 0 {
		t.Errorf("unselectable element drew %d ops, want none", len(rec.ops))
	}
}

func TestOverlayFrameLayoutInsetsContent(t *testing.T) {
	frame := NewOverlayFrame("Title", "Sub")
	list := NewList()
	frame.SetContent(list)

	frame.Layout(0, 0, 1280, 720)

	n := list.Node()
	if n.X() != 20 || n.Y() != 100 {
		t.Errorf("content origin = (%d,%d), want (20,100)", n.X(), n.Y())
	}
	if n.Width() != 1240 || n.Height() != 570 {
		t.Errorf("content size = (%d,%d), want (1240,570)", n.Width(), n.Height())
	}

	if list.Node().Parent() != Element(frame) {
		t.Error("SetContent did not set the parent back-reference")
	}
}

func TestOverlayFrameDrawHeader(t *testing.T) {
	frame := NewOverlayFrame("Title", "Sub")
	frame.Layout(0, 0, 1280, 720)

	rec := &recorder{}
	frame.Draw(rec)

	bg := rec.ops[0]
	if bg.kind != "rect" || bg.x != 0 || bg.y != 0 || bg.w != 1280 || bg.h != 720 {
		t.Errorf("background = %+v, want full-surface rect", bg)
	}
	if bg.color != style.FrameBackground {
		t.Errorf("background color = %04x", uint16(bg.color))
	}

	title := rec.ops[1]
	if title.kind != "string" || title.s != "Title" || title.x != 20 || title.y != 50 || title.size != 32 {
		t.Errorf("title = %+v, want \"Title\" at (20,50) size 32", title)
	}
	sub := rec.ops[2]
	if sub.kind != "string" || sub.s != "Sub" || sub.x != 20 || sub.y != 85 || sub.size != 15 {
		t.Errorf("subtitle = %+v, want \"Sub\" at (20,85) size 15", sub)
	}
	if sub.color != style.Description {
		t.Errorf("subtitle color = %04x, want muted", uint16(sub.color))
	}
}

func TestOverlayFrameFocusDelegatesToContent(t *testing.T) {
	frame := NewOverlayFrame("Title", "Sub")
	if got := frame.RequestFocus(FocusNone); got != Element(frame) {
		t.Error("empty frame should keep focus itself")
	}

	list := NewList()
	item := NewListItem("entry")
	list.AddItem(item)
	frame.SetContent(list)

	if got := frame.RequestFocus(FocusNone); got != Element(item) {
		t.Error("frame should delegate focus to its content")
	}
}

func TestListItemClick(t *testing.T) {
	item := NewListItem("entry")

	if item.OnClick(input.KeyA) {
		t.Error("click with no listener reported handled")
	}

	fired := false
	item.SetClickListener(func() bool {
		fired = true
		return true
	})

	if !item.OnClick(input.KeyA) {
		t.Error("click with listener not handled")
	}
	if !fired {
		t.Error("listener did not fire")
	}

	fired = false
	if item.OnClick(input.KeyB) {
		t.Error("non-activation key reported handled")
	}
	if fired {
		t.Error("listener fired for non-activation key")
	}
}

func TestListItemDefaults(t *testing.T) {
	item := NewListItem("entry")
	if !item.Node().Selectable() {
		t.Error("list item not selectable")
	}
	if item.Node().Height() != style.ListItemDefaultHeight {
		t.Errorf("height = %d, want %d", item.Node().Height(), int32(style.ListItemDefaultHeight))
	}
}

func TestCustomDrawerReceivesLaidOutRect(t *testing.T) {
	var gotX, gotY, gotW, gotH int32
	d := NewCustomDrawer(60, func(r Renderer, x, y, w, h int32) {
		gotX, gotY, gotW, gotH = x, y, w, h
	})
	d.Layout(10, 20, 300, 60)
	d.Draw(&recorder{})

	if gotX != 10 || gotY != 20 || gotW != 300 || gotH != 60 {
		t.Errorf("drawer rect = (%d,%d,%d,%d)", gotX, gotY, gotW, gotH)
	}
}
