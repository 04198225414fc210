package renderer

import (
	"sync"

	"github.com/dshills/sodiumview/internal/renderer/backend"
	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/statusline"
	"github.com/dshills/sodiumview/internal/renderer/viewport"
)

// Frame is the editor state rendered by one pass.
// The caller must keep it unchanged until the pass returns.
type Frame struct {
	Buffer  viewport.BufferReader
	Cursor  viewport.Cursor
	Scroll  viewport.Scroll
	Options viewport.Options
	Status  statusline.StatusBar
	Prompt  string
}

// Task selects how much of the display a redraw covers.
type Task int

const (
	TaskNone      Task = iota // Nothing to draw
	TaskStatusBar             // Status bar and prompt only
	TaskFull                  // Viewport, status bar and prompt
)

// String returns the task name.
func (t Task) String() string {
	switch t {
	case TaskNone:
		return "none"
	case TaskStatusBar:
		return "status"
	case TaskFull:
		return "full"
	default:
		return "unknown"
	}
}

// Options configures the renderer.
type Options struct {
	Geometry core.Geometry
	Theme    Theme
}

// DefaultOptions returns options for a pixel surface with the 8x16 font.
func DefaultOptions() Options {
	return Options{
		Geometry: core.PixelGeometry(),
		Theme:    DefaultTheme(),
	}
}

// TerminalOptions returns options for a surface addressed in terminal cells.
func TerminalOptions() Options {
	return Options{
		Geometry: core.TerminalGeometry(),
		Theme:    DefaultTheme(),
	}
}

// Stats reports renderer activity.
type Stats struct {
	Frames        uint64 // Full render passes
	StatusRenders uint64 // Status-bar-only passes
	Glyphs        int    // Buffer glyphs drawn by the last full pass
}

// Renderer is the display compositor. It is the only writer to its
// surface; render passes are serialized.
type Renderer struct {
	mu sync.Mutex

	surface backend.Surface
	opts    Options
	stats   Stats
}

// New creates a renderer drawing to the given surface.
func New(surface backend.Surface, opts Options) *Renderer {
	if opts.Theme.Palette == nil {
		opts.Theme.Palette = DefaultTheme().Palette
	}
	return &Renderer{
		surface: surface,
		opts:    opts,
	}
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// SetTheme replaces the theme used by subsequent passes.
func (r *Renderer) SetTheme(theme Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if theme.Palette == nil {
		theme.Palette = DefaultTheme().Palette
	}
	r.opts.Theme = theme
}

// SetGeometry replaces the cell metrics used by subsequent passes.
func (r *Renderer) SetGeometry(geom core.Geometry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.Geometry = geom
}

// Stats returns renderer activity counters.
func (r *Renderer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Redraw performs the pass selected by task.
func (r *Renderer) Redraw(task Task, f Frame) {
	switch task {
	case TaskFull:
		r.Render(f)
	case TaskStatusBar:
		r.RenderStatusBar(f)
	}
}

// Render draws the whole frame: background, line marker, cursor cell,
// buffer glyphs, status bar and prompt, then syncs once.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Frames++
	w, h := r.surface.Size()
	if !r.drawable(w, h) {
		r.stats.Glyphs = 0
		r.surface.Sync()
		return
	}

	r.drawViewport(w, h, f)
	r.drawStatusBar(w, h, f)
	r.surface.Sync()
}

// RenderStatusBar redraws only the status bar and prompt, then syncs once.
func (r *Renderer) RenderStatusBar(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.StatusRenders++
	w, h := r.surface.Size()
	if r.drawable(w, h) {
		r.drawStatusBar(w, h, f)
	}
	r.surface.Sync()
}

func (r *Renderer) drawable(w, h int) bool {
	return w > 0 && h > 0 && r.opts.Geometry.Valid()
}

// drawViewport must be called with r.mu held.
func (r *Renderer) drawViewport(w, h int, f Frame) {
	g := r.opts.Geometry
	theme := r.opts.Theme

	r.surface.Clear(theme.Background)

	size := viewport.Size{
		Cols: ceilDiv(w, g.CellWidth),
		Rows: ceilDiv(h, g.CellHeight),
	}
	comp := viewport.NewComposer(theme.Palette, size)

	if f.Options.LineMarker {
		if row, ok := comp.MarkerRow(f.Cursor, f.Scroll); ok {
			r.surface.FillRect(0, row*g.CellHeight, w, g.CellHeight, theme.LineMarker)
		}
	}

	if col, row, ok := comp.CursorCell(f.Cursor, f.Scroll); ok {
		x, y := g.CellToSurface(col, row)
		r.surface.FillRect(x, y, g.CellWidth, g.CellHeight, theme.CursorBlock)
	}

	cells := comp.Compose(f.Buffer, f.Cursor, f.Scroll, f.Options)
	for _, c := range cells {
		x, y := g.CellToSurface(c.Col, c.Row)
		r.surface.DrawGlyph(x, y, c.Rune, c.Color)
	}
	r.stats.Glyphs = len(cells)
}

// drawStatusBar must be called with r.mu held.
func (r *Renderer) drawStatusBar(w, h int, f Frame) {
	g := r.opts.Geometry
	theme := r.opts.Theme

	layout, texts := statusline.Compose(w, h, f.Cursor.Mode, f.Status, f.Prompt, g)
	if layout.Visible {
		b := layout.Band
		r.surface.FillRect(b.X, b.Y, b.Width, b.Height, theme.StatusBand)
	}
	if layout.Prompt {
		p := layout.PromptRow
		r.surface.FillRect(p.X, p.Y, p.Width, p.Height, theme.Background)
	}

	color := theme.textColor()
	for _, t := range texts {
		n := 0
		for _, ch := range t.Text {
			r.surface.DrawGlyph(t.X+n*g.CellWidth, t.Y, ch, color)
			n++
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
