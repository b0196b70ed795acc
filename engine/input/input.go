// Package input models the per-frame input snapshot the host delivers. The
// engine never polls hardware; a core.Host fills one State per frame.
package input

// Keys is a bitmask of overlay buttons.
type Keys uint64

const (
	KeyA Keys = 1 << iota
	KeyB
	KeyX
	KeyY
	KeyL
	KeyR
	KeyZL
	KeyZR
	KeyPlus
	KeyMinus
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
)

func (k Keys) Has(mask Keys) bool { return k&mask != 0 }

// Touch is the single active touch point, if any.
type Touch struct {
	X, Y   int32
	Active bool
}

// State is one frame's input snapshot: buttons that went down this frame,
// buttons currently held, and at most one touch point.
type State struct {
	Down  Keys
	Held  Keys
	Touch Touch
}
