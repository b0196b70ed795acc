// Package style holds the overlay's default palette and widget metrics.
package style

import "github.com/veilui/veil/engine/gfx"

var (
	FrameBackground = gfx.RGBA4444(0x0, 0x0, 0x0, 0xD)
	Transparent     = gfx.RGBA4444(0x0, 0x0, 0x0, 0x0)
	Highlight       = gfx.RGBA4444(0x0, 0xF, 0xD, 0xF)
	Frame           = gfx.RGBA4444(0x7, 0x7, 0x7, 0x7)
	Text            = gfx.RGBA4444(0xF, 0xF, 0xF, 0xF)
	Description     = gfx.RGBA4444(0xA, 0xA, 0xA, 0xF)
	ClickAnimation  = gfx.RGBA4444(0x0, 0x2, 0x2, 0xF)
)

// ListItemDefaultHeight is the row height list items take unless overridden.
const ListItemDefaultHeight = 70
