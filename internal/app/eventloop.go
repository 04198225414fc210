package app

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/sodiumview/internal/config/watcher"
	"github.com/dshills/sodiumview/internal/renderer"
	"github.com/dshills/sodiumview/internal/renderer/backend"
	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/viewport"
)

// eventLoop processes backend events until one of them ends the session.
func (app *Application) eventLoop() error {
	for {
		if err := app.handleEvent(app.backend.PollEvent()); err != nil {
			return err
		}
	}
}

// handleEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev)
	case backend.EventClosed:
		return ErrQuit
	default:
		return nil
	}
}

func (app *Application) handleResize(ev backend.Event) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.logger.Debug("resize to %dx%d", ev.Width, ev.Height)
	app.ensureVisible()
	app.redraw(renderer.TaskFull)
	return nil
}

func (app *Application) handleInterrupt(ev backend.Event) error {
	switch data := ev.Data.(type) {
	case shutdownRequest:
		return ErrQuit
	case watcher.Update:
		app.applyConfig(data)
	}
	return nil
}

func (app *Application) handleKey(ev backend.Event) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.cursor.Mode == core.ModePrompt {
		return app.handlePromptKey(ev)
	}

	switch ev.Key {
	case backend.KeyCtrlC, backend.KeyEscape:
		return ErrQuit
	case backend.KeyUp:
		app.moveCursor(0, -1)
	case backend.KeyDown:
		app.moveCursor(0, 1)
	case backend.KeyLeft:
		app.moveCursor(-1, 0)
	case backend.KeyRight:
		app.moveCursor(1, 0)
	case backend.KeyPageUp:
		app.moveCursor(0, -app.viewSize().Rows)
	case backend.KeyPageDown:
		app.moveCursor(0, app.viewSize().Rows)
	case backend.KeyHome:
		app.cursor.X, app.cursor.Y = 0, 0
	case backend.KeyRune:
		switch ev.Rune {
		case 'q':
			return ErrQuit
		case ':':
			app.enterPrompt(":")
		case 'k':
			app.moveCursor(0, -1)
		case 'j':
			app.moveCursor(0, 1)
		case 'h':
			app.moveCursor(-1, 0)
		case 'l':
			app.moveCursor(1, 0)
		default:
			return nil
		}
	default:
		return nil
	}

	app.ensureVisible()
	app.redraw(renderer.TaskFull)
	return nil
}

// handlePromptKey must be called with app.mu held. Typing only touches
// the status bar and prompt row, so it redraws just those.
func (app *Application) handlePromptKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlC:
		return ErrQuit

	case backend.KeyEscape:
		app.leavePrompt()

	case backend.KeyEnter:
		cmd := strings.TrimPrefix(app.prompt, ":")
		app.leavePrompt()
		if err := app.execute(cmd); err != nil {
			return err
		}

	case backend.KeyBackspace:
		runes := []rune(app.prompt)
		if len(runes) <= 1 {
			app.leavePrompt()
			break
		}
		app.setPrompt(string(runes[:len(runes)-1]))
		app.redraw(renderer.TaskStatusBar)
		return nil

	case backend.KeyRune:
		app.setPrompt(app.prompt + string(ev.Rune))
		app.redraw(renderer.TaskStatusBar)
		return nil

	default:
		return nil
	}

	app.ensureVisible()
	app.redraw(renderer.TaskFull)
	return nil
}

// execute runs a prompt command. It must be called with app.mu held.
func (app *Application) execute(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	switch cmd {
	case "":
		return nil
	case "q", "quit":
		return ErrQuit
	case "highlight":
		app.view.Highlight = !app.view.Highlight
		app.status.Msg = "highlight " + onOff(app.view.Highlight)
	case "marker":
		app.view.LineMarker = !app.view.LineMarker
		app.status.Msg = "marker " + onOff(app.view.LineMarker)
	default:
		if n, err := strconv.Atoi(cmd); err == nil {
			app.cursor.X, app.cursor.Y = 0, 0
			app.moveCursor(0, n-1)
			return nil
		}
		app.status.Msg = "unknown command: " + cmd
		app.logger.Warn("unknown command %q", cmd)
	}
	return nil
}

// applyConfig swaps in a reloaded configuration.
func (app *Application) applyConfig(u watcher.Update) {
	app.mu.Lock()
	defer app.mu.Unlock()

	log := app.logger.WithComponent("config")

	err := u.Err
	var opts renderer.Options
	if err == nil && u.Config != nil {
		opts, err = u.Config.RenderOptions(app.base)
	}
	if err != nil {
		log.Error("reload failed: %v", err)
		app.status.Msg = "config error: " + err.Error()
		app.redraw(renderer.TaskStatusBar)
		return
	}
	if u.Config == nil {
		return
	}

	app.render = opts
	if app.renderer != nil {
		app.renderer.SetGeometry(opts.Geometry)
		app.renderer.SetTheme(opts.Theme)
	}
	app.view = u.Config.DisplayOptions()
	app.status.Msg = "config reloaded"
	log.Info("config reloaded")

	app.ensureVisible()
	app.redraw(renderer.TaskFull)
}

func (app *Application) enterPrompt(text string) {
	app.cursor.Mode = core.ModePrompt
	app.status.Mode = app.cursor.Mode.String()
	app.setPrompt(text)
}

func (app *Application) leavePrompt() {
	app.cursor.Mode = core.ModeNormal
	app.status.Mode = app.cursor.Mode.String()
	app.setPrompt("")
}

// setPrompt updates the prompt row and mirrors the command into the
// status bar.
func (app *Application) setPrompt(text string) {
	app.prompt = text
	app.status.Cmd = strings.TrimPrefix(text, ":")
}

// moveCursor moves the cursor and clamps it to the document.
func (app *Application) moveCursor(dx, dy int) {
	last := max(app.doc.LineCount()-1, 0)
	y := min(max(app.cursor.Y+dy, 0), last)

	width := utf8.RuneCountInString(app.doc.LineText(y))
	x := min(max(app.cursor.X+dx, 0), max(width-1, 0))

	app.cursor.X, app.cursor.Y = x, y
}

// viewSize returns how many text cells are visible above the status bar.
func (app *Application) viewSize() viewport.Size {
	if app.backend == nil {
		return viewport.Size{}
	}
	geom := app.render.Geometry
	if !geom.Valid() {
		return viewport.Size{}
	}

	w, h := app.backend.Size()
	reserved := geom.StatusRowHeight()
	if app.cursor.Mode == core.ModePrompt {
		reserved *= 2
	}
	return viewport.Size{
		Cols: max(w/geom.CellWidth, 1),
		Rows: max((h-reserved)/geom.CellHeight, 1),
	}
}

// ensureVisible scrolls so the cursor cell is on screen.
func (app *Application) ensureVisible() {
	size := app.viewSize()
	if size.Rows > 0 {
		switch {
		case app.cursor.Y < app.scroll.Y:
			app.scroll.Y = app.cursor.Y
		case app.cursor.Y >= app.scroll.Y+size.Rows:
			app.scroll.Y = app.cursor.Y - size.Rows + 1
		}
	}
	if size.Cols > 0 {
		switch {
		case app.cursor.X < app.scroll.X:
			app.scroll.X = app.cursor.X
		case app.cursor.X >= app.scroll.X+size.Cols:
			app.scroll.X = app.cursor.X - size.Cols + 1
		}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
