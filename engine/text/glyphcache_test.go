package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestCache(t *testing.T) *GlyphCache {
	t.Helper()
	c := NewGlyphCache()
	if err := c.Initialize(goregular.TTF); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return c
}

func TestInitializeIdempotent(t *testing.T) {
	c := newTestCache(t)
	if !c.Initialized() {
		t.Fatal("cache not initialized after successful Initialize")
	}
	// A second call is a no-op, even with garbage data.
	if err := c.Initialize([]byte("not a font")); err != nil {
		t.Errorf("second Initialize returned %v, want nil", err)
	}
	if !c.Initialized() {
		t.Error("cache lost its face after a redundant Initialize")
	}
}

func TestInitializeFailureDegrades(t *testing.T) {
	c := NewGlyphCache()
	if err := c.Initialize([]byte("not a font")); err == nil {
		t.Fatal("Initialize accepted garbage")
	}
	if c.Initialized() {
		t.Fatal("cache claims readiness without a face")
	}

	g := c.GetOrCreateGlyph('A', false, 32)
	if g.Bitmap != nil || g.Width != 0 || g.Height != 0 || g.Advance != 0 {
		t.Errorf("uninitialized lookup = %+v, want empty glyph", g)
	}
}

func TestGetOrCreateGlyphCachesByKey(t *testing.T) {
	c := newTestCache(t)

	a := c.GetOrCreateGlyph('A', false, 32)
	b := c.GetOrCreateGlyph('A', false, 32)
	if a != b {
		t.Error("identical key returned distinct entries")
	}

	tests := []struct {
		name string
		cp   rune
		mono bool
		size uint32
	}{
		{"different size", 'A', false, 33},
		{"monospace flag", 'A', true, 32},
		{"different codepoint", 'B', false, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g := c.GetOrCreateGlyph(tt.cp, tt.mono, tt.size); g == a {
				t.Error("distinct key shares the cached entry")
			}
		})
	}
}

func TestGlyphMetrics(t *testing.T) {
	c := newTestCache(t)

	g := c.GetOrCreateGlyph('A', false, 32)
	if g.Bitmap == nil || g.Width <= 0 || g.Height <= 0 {
		t.Fatalf("visible glyph has no bitmap: %+v", g)
	}
	if int32(len(g.Bitmap)) != g.Width*g.Height {
		t.Errorf("bitmap length %d, want %d", len(g.Bitmap), g.Width*g.Height)
	}
	if g.Advance <= 0 {
		t.Errorf("advance = %f, want > 0", g.Advance)
	}
	if g.FontSize != 32 {
		t.Errorf("font size = %d, want 32", g.FontSize)
	}

	var coverage bool
	for _, a := range g.Bitmap {
		if a > 0 {
			coverage = true
			break
		}
	}
	if !coverage {
		t.Error("glyph bitmap is entirely blank")
	}

	// The glyph sits above the baseline, so its top offset is negative.
	if g.OffsetY >= 0 {
		t.Errorf("offsetY = %d, want negative", g.OffsetY)
	}
}

func TestWhitespaceGlyph(t *testing.T) {
	c := newTestCache(t)

	g := c.GetOrCreateGlyph(' ', false, 24)
	if g.Bitmap != nil || g.Width != 0 || g.Height != 0 {
		t.Errorf("space glyph has a bitmap: %+v", g)
	}
	if g.Advance <= 0 {
		t.Errorf("space advance = %f, want > 0 (callers still move the cursor)", g.Advance)
	}
}

func TestLargerSizeLargerAdvance(t *testing.T) {
	c := newTestCache(t)

	small := c.GetOrCreateGlyph('M', false, 12)
	large := c.GetOrCreateGlyph('M', false, 48)
	if large.Advance <= small.Advance {
		t.Errorf("advance at 48px (%f) not larger than at 12px (%f)", large.Advance, small.Advance)
	}
}
