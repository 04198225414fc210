// Package app runs the interactive viewer. It owns the document, cursor,
// scroll and status state and drives the renderer from terminal events.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/sodiumview/internal/config"
	"github.com/dshills/sodiumview/internal/config/watcher"
	"github.com/dshills/sodiumview/internal/renderer"
	"github.com/dshills/sodiumview/internal/renderer/backend"
	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/statusline"
	"github.com/dshills/sodiumview/internal/renderer/viewport"
)

// Backend is a drawing surface that also delivers input events.
type Backend interface {
	backend.Surface

	// Init prepares the backend for drawing.
	Init() error

	// Shutdown releases the backend.
	Shutdown()

	// PollEvent blocks until the next event.
	PollEvent() backend.Event

	// Interrupt wakes PollEvent with an EventInterrupt carrying data.
	// Safe to call from any goroutine.
	Interrupt(data any)
}

// Options configures the application.
type Options struct {
	// Config is the initial configuration. Nil uses config.Default().
	Config *config.Config

	// Files are the files named on the command line. The first one is shown.
	Files []string

	// Prompt is the initial prompt text. Non-empty starts in prompt mode.
	Prompt string

	// Base supplies the surface geometry. The zero value means
	// renderer.TerminalOptions().
	Base renderer.Options

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger
}

// Application is the viewer. State is only mutated on the event loop.
type Application struct {
	mu sync.RWMutex

	base     renderer.Options
	render   renderer.Options
	renderer *renderer.Renderer
	backend  Backend

	doc    *Document
	view   viewport.Options
	cursor viewport.Cursor
	scroll viewport.Scroll
	status statusline.StatusBar
	prompt string

	logger  *Logger
	running atomic.Bool
}

// shutdownRequest is posted through the backend to stop the event loop.
type shutdownRequest struct{}

// New creates an application with the given options.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger()
	}
	base := opts.Base
	if base.Geometry == (core.Geometry{}) {
		base = renderer.TerminalOptions()
	}

	render, err := cfg.RenderOptions(base)
	if err != nil {
		return nil, NewComponentError("config", "apply", err)
	}

	doc := NewScratchDocument()
	if len(opts.Files) > 0 {
		doc, err = LoadDocument(opts.Files[0])
		if err != nil {
			return nil, err
		}
		if len(opts.Files) > 1 {
			logger.Warn("showing %s, ignoring %d more files", opts.Files[0], len(opts.Files)-1)
		}
	}

	app := &Application{
		base:   base,
		render: render,
		doc:    doc,
		view:   cfg.DisplayOptions(),
		status: statusline.NewStatusBar(),
		logger: logger,
	}
	app.status.File = doc.Name
	if opts.Prompt != "" {
		app.enterPrompt(opts.Prompt)
	}
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	app.renderer = renderer.New(b, app.render)
	return nil
}

// Run initializes the backend, draws the first frame and processes events
// until quit. A normal quit returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	app.logger.Info("viewing %s (%d lines)", app.doc.Name, app.doc.LineCount())
	app.mu.Lock()
	app.ensureVisible()
	app.redraw(renderer.TaskFull)
	app.mu.Unlock()

	return app.eventLoop()
}

// Shutdown asks a running event loop to stop. Safe to call from any goroutine.
func (app *Application) Shutdown() {
	if !app.running.Load() || app.backend == nil {
		return
	}
	app.backend.Interrupt(shutdownRequest{})
}

// NotifyConfig hands a config reload to the event loop. It has the
// watcher.Handler signature and is safe to call from any goroutine.
func (app *Application) NotifyConfig(u watcher.Update) {
	if app.backend == nil {
		return
	}
	app.backend.Interrupt(u)
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Document returns the document being viewed.
func (app *Application) Document() *Document {
	return app.doc
}

// Frame returns the current display state.
func (app *Application) Frame() renderer.Frame {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.frame()
}

// frame must be called with app.mu held.
func (app *Application) frame() renderer.Frame {
	return renderer.Frame{
		Buffer:  app.doc,
		Cursor:  app.cursor,
		Scroll:  app.scroll,
		Options: app.view,
		Status:  app.status,
		Prompt:  app.prompt,
	}
}

// redraw must be called with app.mu held.
func (app *Application) redraw(task renderer.Task) {
	if app.renderer == nil {
		return
	}
	app.renderer.Redraw(task, app.frame())
}
