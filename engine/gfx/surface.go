package gfx

// Surface is the writable pixel buffer the renderer draws into for one
// frame. The host hands one over per frame and presents it afterwards; the
// engine never owns the memory beyond the frame.
type Surface struct {
	Pix  []Color
	W, H int
}

func NewSurface(w, h int) *Surface {
	return &Surface{Pix: make([]Color, w*h), W: w, H: h}
}

// Fill overwrites every pixel. Used for the per-frame clear; no blending.
func (s *Surface) Fill(c Color) {
	for i := range s.Pix {
		s.Pix[i] = c
	}
}

// At returns the pixel at (x,y), or 0 when out of bounds.
func (s *Surface) At(x, y int) Color {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0
	}
	return s.Pix[y*s.W+x]
}
