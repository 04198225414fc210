package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/sodiumview/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
	EventClosed // The screen was shut down
)

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer reacts to.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyBackspace
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width, Height int

	// Interrupt payload
	Data any
}

// Terminal implements Surface using tcell. One surface unit is one
// terminal cell, so it pairs with core.TerminalGeometry.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	// Background color per cell, so glyphs keep the band they are drawn on.
	bg            []core.Color
	width, height int
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the terminal for drawing.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.width, t.height = t.screen.Size()
	t.bg = make([]core.Color, t.width*t.height)
	return nil
}

// Shutdown restores the terminal state.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) Clear(c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	if w != t.width || h != t.height {
		t.width, t.height = w, h
		t.bg = make([]core.Color, w*h)
	}
	t.fill(0, 0, w, h, c)
}

func (t *Terminal) FillRect(x, y, w, h int, c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.fill(x, y, w, h, c)
}

func (t *Terminal) DrawGlyph(x, y int, r rune, c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inBounds(x, y) {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(c)).
		Background(toTcell(t.bg[y*t.width+x]))
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// PollEvent waits for and returns the next terminal event.
// This is a blocking call.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// Interrupt wakes up PollEvent with an EventInterrupt carrying data.
func (t *Terminal) Interrupt(data any) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(data)) // best-effort; queue may be full
}

// fill must be called with t.mu held.
func (t *Terminal) fill(x, y, w, h int, c core.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	for row := max(y, 0); row < y+h && row < t.height; row++ {
		for col := max(x, 0); col < x+w && col < t.width; col++ {
			t.bg[row*t.width+col] = c
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *Terminal) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < t.width && y < t.height
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}

	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventInterrupt:
		return Event{
			Type: EventInterrupt,
			Data: e.Data(),
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	default:
		return KeyNone
	}
}
