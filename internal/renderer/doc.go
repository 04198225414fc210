// Package renderer provides the display compositor for the Sodium viewer.
//
// The compositor is responsible for:
//   - Placing buffer characters on a fixed-cell grid
//   - Coloring each character with the per-character classifier
//   - Painting the line marker band and the cursor cell
//   - Laying out the four-column status bar and the prompt row
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│          Renderer (Compositor)          │
//	├─────────────────────────────────────────┤
//	│  viewport.Composer │ statusline.Compose │
//	├─────────────────────────────────────────┤
//	│       highlight.Classify / Palette      │
//	├─────────────────────────────────────────┤
//	│           backend.Surface               │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ Recorder (tests)    │
//	└─────────────────────────────────────────┘
//
// Every frame is recomputed from an immutable Frame snapshot and
// finished with exactly one Surface.Sync.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.TerminalOptions())
//	r.Render(frame)
package renderer
