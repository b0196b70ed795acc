package gfx

import (
	"unicode/utf8"

	"github.com/veilui/veil/engine/text"
)

// Renderer draws into the surface bound for the current frame. Every
// primitive clamps to the surface bounds; drawing with no surface bound is a
// no-op. One renderer serves the whole overlay, single-threaded.
type Renderer struct {
	glyphs *text.GlyphCache
	curr   *Surface
}

func NewRenderer(glyphs *text.GlyphCache) *Renderer {
	return &Renderer{glyphs: glyphs}
}

func (r *Renderer) Glyphs() *text.GlyphCache { return r.glyphs }

// Bind attaches the writable surface for this frame. The host owns the
// memory; Unbind before handing it back.
func (r *Renderer) Bind(s *Surface)   { r.curr = s }
func (r *Renderer) Unbind()           { r.curr = nil }
func (r *Renderer) Surface() *Surface { return r.curr }

// SetPixel overwrites one pixel, bounds-checked.
func (r *Renderer) SetPixel(x, y int32, c Color) {
	s := r.curr
	if s == nil || x < 0 || y < 0 || x >= int32(s.W) || y >= int32(s.H) {
		return
	}
	s.Pix[int(y)*s.W+int(x)] = c
}

// SetPixelBlend alpha-blends one pixel over the destination. A fully
// transparent source must not disturb the destination, so it returns early.
// The destination alpha is kept as-is: the alpha plane encodes overlay
// visibility to the host compositor, not translucency of drawn content.
func (r *Renderer) SetPixelBlend(x, y int32, c Color) {
	s := r.curr
	if s == nil || x < 0 || y < 0 || x >= int32(s.W) || y >= int32(s.H) {
		return
	}
	a := c.A()
	if a == 0 {
		return
	}
	off := int(y)*s.W + int(x)
	dst := s.Pix[off]
	if a == 15 {
		// Fully opaque replaces rgb exactly; >>4 would lose a step.
		s.Pix[off] = c.WithAlpha(dst.A())
		return
	}
	inv := 15 - a
	s.Pix[off] = RGBA4444(
		uint8((int(dst.R())*int(inv)+int(c.R())*int(a))>>4),
		uint8((int(dst.G())*int(inv)+int(c.G())*int(a))>>4),
		uint8((int(dst.B())*int(inv)+int(c.B())*int(a))>>4),
		dst.A(),
	)
}

// DrawRect blends a filled rectangle, clipped to the surface.
func (r *Renderer) DrawRect(x, y, w, h int32, c Color) {
	s := r.curr
	if s == nil {
		return
	}
	x0, y0 := max32(0, x), max32(0, y)
	x1, y1 := min32(int32(s.W), x+w), min32(int32(s.H), y+h)
	for yi := y0; yi < y1; yi++ {
		for xi := x0; xi < x1; xi++ {
			r.SetPixelBlend(xi, yi, c)
		}
	}
}

// DrawRoundedRect degrades to a plain filled rect; corner rounding is not
// worth the per-pixel cost for an overlay this simple.
func (r *Renderer) DrawRoundedRect(x, y, w, h int32, radius float32, c Color) {
	r.DrawRect(x, y, w, h, c)
}

func (r *Renderer) DrawBorderedRoundedRect(x, y, w, h int32, radius, borderWidth float32, c Color) {
	r.DrawRect(x, y, w, h, c)
}

// DrawString draws UTF-8 text with its top-left pen at (x,y). Decoding stops
// silently at the first invalid byte sequence. '\n' resets the pen to x and
// moves down by exactly fontSize. Glyph coverage is reduced to 4 bits and
// scales the draw color's alpha. The cursor is an integer, so fractional
// advance remainders are dropped per glyph, matching TextDimensions.
func (r *Renderer) DrawString(s string, monospace bool, x, y int32, fontSize uint32, c Color) {
	currX, currY := x, y
	for i := 0; i < len(s); {
		cp, size := utf8.DecodeRuneInString(s[i:])
		if cp == utf8.RuneError && size <= 1 {
			break
		}
		i += size

		if cp == '\n' {
			currX = x
			currY += int32(fontSize)
			continue
		}

		g := r.glyphs.GetOrCreateGlyph(cp, monospace, fontSize)
		if g.Bitmap != nil {
			for gy := int32(0); gy < g.Height; gy++ {
				for gx := int32(0); gx < g.Width; gx++ {
					cov := g.Bitmap[gy*g.Width+gx]
					if cov == 0 {
						continue
					}
					a := (uint16(c.A()) * uint16(cov>>4)) >> 4
					r.SetPixelBlend(
						currX+gx+g.OffsetX,
						currY+gy+g.OffsetY+int32(fontSize),
						c.WithAlpha(uint8(a)),
					)
				}
			}
		}
		currX += int32(g.Advance)
	}
}

// TextDimensions measures s without drawing: the widest line and the total
// height (fontSize per line). It walks exactly like DrawString, including
// the per-glyph truncation of fractional advances, so containers sized from
// it always match what gets drawn.
func (r *Renderer) TextDimensions(s string, monospace bool, fontSize uint32) (w, h int32) {
	var width, maxWidth int32
	height := int32(fontSize)

	for i := 0; i < len(s); {
		cp, size := utf8.DecodeRuneInString(s[i:])
		if cp == utf8.RuneError && size <= 1 {
			break
		}
		i += size

		if cp == '\n' {
			if width > maxWidth {
				maxWidth = width
			}
			width = 0
			height += int32(fontSize)
			continue
		}

		g := r.glyphs.GetOrCreateGlyph(cp, monospace, fontSize)
		width += int32(g.Advance)
	}
	if width > maxWidth {
		maxWidth = width
	}
	return maxWidth, height
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
