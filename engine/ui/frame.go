package ui

import "github.com/veilui/veil/engine/style"

// Header and content margins, in surface pixels.
const (
	frameMarginSide   = 20
	frameHeaderHeight = 100
	frameMarginBottom = 50

	titleOffsetY     = 50
	titleFontSize    = 32
	subtitleOffsetY  = 85
	subtitleFontSize = 15
)

// OverlayFrame is the root decorator of a screen: translucent background,
// title and subtitle header, and at most one content element inset below the
// header band.
type OverlayFrame struct {
	Base
	title    string
	subtitle string
	content  Element
}

func NewOverlayFrame(title, subtitle string) *OverlayFrame {
	return &OverlayFrame{title: title, subtitle: subtitle}
}

// SetContent replaces the frame's single content element. The frame owns it
// exclusively.
func (f *OverlayFrame) SetContent(content Element) {
	if content != nil {
		content.Node().SetParent(f)
	}
	f.content = content
}

func (f *OverlayFrame) Content() Element { return f.content }

func (f *OverlayFrame) Draw(r Renderer) {
	n := f.Node()
	r.DrawRect(n.X(), n.Y(), n.Width(), n.Height(), style.FrameBackground)

	r.DrawString(f.title, false, n.X()+frameMarginSide, n.Y()+titleOffsetY, titleFontSize, style.Text)
	r.DrawString(f.subtitle, false, n.X()+frameMarginSide, n.Y()+subtitleOffsetY, subtitleFontSize, style.Description)

	if f.content != nil {
		Frame(f.content, r)
	}
}

func (f *OverlayFrame) Layout(x, y, w, h int32) {
	f.Base.Layout(x, y, w, h)
	if f.content != nil {
		f.content.Layout(
			x+frameMarginSide,
			y+frameHeaderHeight,
			w-2*frameMarginSide,
			h-frameHeaderHeight-frameMarginBottom,
		)
	}
}

func (f *OverlayFrame) RequestFocus(dir FocusDirection) Element {
	if f.content != nil {
		return f.content.RequestFocus(dir)
	}
	return f
}

func (f *OverlayFrame) RequestFocusFrom(old Element, dir FocusDirection) Element {
	if f.content != nil {
		return f.content.RequestFocusFrom(old, dir)
	}
	return f
}
