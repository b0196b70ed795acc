package core

import "github.com/veilui/veil/engine/gfx"

// recorder implements ui.Renderer, capturing draw calls for assertions.
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
