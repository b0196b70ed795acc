package ui

// itemGutter indents list rows from the list's left edge.
const itemGutter = 20

// List stacks its children vertically in insertion order. It exclusively
// owns them; a negative scroll offset means content shifted upward.
type List struct {
	Base
	items        []Element
	scrollOffset int32
}

func NewList() *List { return &List{} }

func (l *List) AddItem(item Element) {
	item.Node().SetParent(l)
	l.items = append(l.items, item)
}

func (l *List) Items() []Element { return l.items }

func (l *List) ScrollOffset() int32       { return l.scrollOffset }
func (l *List) SetScrollOffset(off int32) { l.scrollOffset = off }

func (l *List) Layout(x, y, w, h int32) {
	l.Base.Layout(x, y, w, h)
	currY := y - l.scrollOffset
	for _, item := range l.items {
		item.Layout(x+itemGutter, currY, w, item.Node().Height())
		currY += item.Node().Height()
	}
}

func (l *List) Draw(r Renderer) {
	for _, item := range l.items {
		Frame(item, r)
	}
}

func (l *List) RequestFocus(dir FocusDirection) Element {
	return l.RequestFocusFrom(nil, dir)
}

// RequestFocusFrom walks the children one level deep: None picks the first
// selectable item, Up/Down step from old to the nearest selectable sibling.
// When nothing qualifies the old focus is kept.
func (l *List) RequestFocusFrom(old Element, dir FocusDirection) Element {
	switch dir {
	case FocusNone:
		for _, item := range l.items {
			if item.Node().Selectable() {
				return item.RequestFocus(dir)
			}
		}
	case FocusDown:
		for i := l.indexOf(old) + 1; i < len(l.items); i++ {
			if l.items[i].Node().Selectable() {
				return l.items[i].RequestFocus(dir)
			}
		}
	case FocusUp:
		for i := l.indexOf(old) - 1; i >= 0; i-- {
			if l.items[i].Node().Selectable() {
				return l.items[i].RequestFocus(dir)
			}
		}
	}
	if old != nil {
		return old
	}
	return l
}

func (l *List) indexOf(e Element) int {
	for i, item := range l.items {
		if item == e {
			return i
		}
	}
	return -1
}
