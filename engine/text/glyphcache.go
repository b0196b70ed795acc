package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rasterized character at one size/style: an 8-bit coverage
// bitmap plus the metrics needed to blit and advance. Bitmap is nil for
// whitespace; callers draw nothing but still advance the cursor.
type Glyph struct {
	Bitmap   []uint8
	Width    int32
	Height   int32
	OffsetX  int32 // left bearing relative to the pen position
	OffsetY  int32 // top of bitmap relative to the baseline (negative above)
	Advance  float32
	FontSize uint32
}

// emptyGlyph backs every lookup made before a font is loaded. Zero size,
// zero advance: text degrades to invisible spacing, never a crash.
var emptyGlyph = &Glyph{}

type faceKey struct {
	size uint32
	mono bool
}

// GlyphCache rasterizes and memoizes glyphs for (codepoint, size, monospace)
// keys against a single loaded face. Entries live for the process lifetime;
// the alphabet an overlay draws is small and bounded, so there is no
// eviction. Not safe for concurrent use; the frame loop is single-threaded.
type GlyphCache struct {
	font   *opentype.Font
	faces  map[faceKey]font.Face
	glyphs map[uint64]*Glyph
}

func NewGlyphCache() *GlyphCache {
	return &GlyphCache{
		faces:  make(map[faceKey]font.Face),
		glyphs: make(map[uint64]*Glyph),
	}
}

// Initialize parses the font face. Idempotent: once a face is loaded,
// further calls are no-ops. On failure the cache stays uninitialized and
// every lookup returns an empty glyph.
func (c *GlyphCache) Initialize(ttf []byte) error {
	if c.font != nil {
		return nil
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	c.font = f
	return nil
}

func (c *GlyphCache) Initialized() bool { return c.font != nil }

// cacheKey packs the triple into one 64-bit key: codepoint in the upper
// word, size in the lower, monospace in the top bit.
func cacheKey(cp rune, monospace bool, fontSize uint32) uint64 {
	key := uint64(uint32(cp))<<32 | uint64(fontSize)
	if monospace {
		key |= 1 << 63
	}
	return key
}

// GetOrCreateGlyph returns the cached glyph for the key, rasterizing it on
// first use. The returned pointer is shared; callers must not mutate it.
func (c *GlyphCache) GetOrCreateGlyph(cp rune, monospace bool, fontSize uint32) *Glyph {
	if c.font == nil {
		return emptyGlyph
	}

	key := cacheKey(cp, monospace, fontSize)
	if g, ok := c.glyphs[key]; ok {
		return g
	}

	g := c.rasterize(cp, monospace, fontSize)
	c.glyphs[key] = g
	return g
}

func (c *GlyphCache) face(monospace bool, fontSize uint32) font.Face {
	fk := faceKey{size: fontSize, mono: monospace}
	if f, ok := c.faces[fk]; ok {
		return f
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size: float64(fontSize), DPI: 72, Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	c.faces[fk] = f
	return f
}

func (c *GlyphCache) rasterize(cp rune, monospace bool, fontSize uint32) *Glyph {
	g := &Glyph{FontSize: fontSize}

	face := c.face(monospace, fontSize)
	if face == nil {
		return g
	}

	dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, cp)
	if !ok {
		return g
	}
	g.Advance = float32(adv) / 64

	if dr.Empty() {
		return g
	}

	w, h := dr.Dx(), dr.Dy()
	g.Width, g.Height = int32(w), int32(h)
	g.OffsetX, g.OffsetY = int32(dr.Min.X), int32(dr.Min.Y)
	g.Bitmap = make([]uint8, w*h)

	if am, isAlpha := mask.(*image.Alpha); isAlpha {
		for gy := 0; gy < h; gy++ {
			src := am.Pix[(maskp.Y+gy)*am.Stride+maskp.X:]
			copy(g.Bitmap[gy*w:(gy+1)*w], src[:w])
		}
		return g
	}
	for gy := 0; gy < h; gy++ {
		for gx := 0; gx < w; gx++ {
			_, _, _, a := mask.At(maskp.X+gx, maskp.Y+gy).RGBA()
			g.Bitmap[gy*w+gx] = uint8(a >> 8)
		}
	}
	return g
}
