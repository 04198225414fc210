// Package backend provides the drawing surface abstraction for the renderer.
package backend

import "github.com/dshills/sodiumview/internal/renderer/core"

// Surface defines the drawing primitives the compositor relies on.
// Coordinates are in surface units (see core.Geometry). Implementations
// must silently clip anything drawn outside their bounds.
type Surface interface {
	// Size returns the surface dimensions.
	Size() (width, height int)

	// Clear fills the entire surface with the given color.
	Clear(c core.Color)

	// FillRect fills a rectangle with the given color.
	FillRect(x, y, w, h int, c core.Color)

	// DrawGlyph draws a single character with its top-left corner at (x, y).
	DrawGlyph(x, y int, r rune, c core.Color)

	// Sync flushes everything drawn since the last Sync to the display.
	Sync()
}

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpGlyph
	OpSync
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "rect"
	case OpGlyph:
		return "glyph"
	case OpSync:
		return "sync"
	default:
		return "unknown"
	}
}

// Op is a single recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  int
	W, H  int
	Rune  rune
	Color core.Color
}

// Recorder is a Surface that records every call instead of drawing.
// It is used to test the compositor.
type Recorder struct {
	width, height int
	ops           []Op
}

// NewRecorder creates a recorder with the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Clear(c core.Color) {
	r.ops = append(r.ops, Op{Kind: OpClear, W: r.width, H: r.height, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h int, c core.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawGlyph(x, y int, ch rune, c core.Color) {
	r.ops = append(r.ops, Op{Kind: OpGlyph, X: x, Y: y, Rune: ch, Color: c})
}

func (r *Recorder) Sync() {
	r.ops = append(r.ops, Op{Kind: OpSync})
}

// Ops returns all recorded operations in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Glyphs returns only the recorded glyph operations.
func (r *Recorder) Glyphs() []Op {
	return r.filter(OpGlyph)
}

// Rects returns only the recorded rectangle fills.
func (r *Recorder) Rects() []Op {
	return r.filter(OpFillRect)
}

// Syncs returns how many times Sync was called.
func (r *Recorder) Syncs() int {
	return len(r.filter(OpSync))
}

// GlyphAt returns the last glyph drawn at (x, y).
func (r *Recorder) GlyphAt(x, y int) (Op, bool) {
	for i := len(r.ops) - 1; i >= 0; i-- {
		op := r.ops[i]
		if op.Kind == OpGlyph && op.X == x && op.Y == y {
			return op, true
		}
	}
	return Op{}, false
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = nil
}

// Resize changes the reported surface size.
func (r *Recorder) Resize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
