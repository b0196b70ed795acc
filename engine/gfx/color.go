package gfx

// Color is a 16-bit RGBA4444 pixel: r in the low nibble, a in the high one.
// Each channel holds a 4-bit magnitude (0-15), so the type itself can never
// carry an out-of-range component.
type Color uint16

// RGBA4444 packs four 4-bit components into a Color. Only the low nibble of
// each argument is used.
func RGBA4444(r, g, b, a uint8) Color {
	return Color(uint16(r&0xF) | uint16(g&0xF)<<4 | uint16(b&0xF)<<8 | uint16(a&0xF)<<12)
}

func (c Color) R() uint8 { return uint8(c & 0xF) }
func (c Color) G() uint8 { return uint8(c >> 4 & 0xF) }
func (c Color) B() uint8 { return uint8(c >> 8 & 0xF) }
func (c Color) A() uint8 { return uint8(c >> 12 & 0xF) }

func (c Color) WithAlpha(a uint8) Color {
	return Color(uint16(c)&0x0FFF | uint16(a&0xF)<<12)
}

// RGBA8 widens the 4-bit channels to 8 bits (0xF -> 0xFF) for hosts that
// present through an 8-bit pipeline.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return c.R() * 17, c.G() * 17, c.B() * 17, c.A() * 17
}
