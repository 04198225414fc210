package statusline

import (
	"testing"

	"github.com/dshills/sodiumview/internal/renderer/core"
)

func TestNewLayoutNormal(t *testing.T) {
	g := core.PixelGeometry()
	l := NewLayout(640, 480, core.ModeNormal, g)

	if l.Prompt {
		t.Error("normal mode should not use prompt layout")
	}
	if !l.Visible {
		t.Error("640px window should show the status bar")
	}
	want := core.Rect{X: 0, Y: 462, Width: 640, Height: 18}
	if l.Band != want {
		t.Errorf("Band = %+v, want %+v", l.Band, want)
	}
	if l.TextY != 463 {
		t.Errorf("TextY = %d, want 463", l.TextY)
	}
	if l.Budget != 20 {
		t.Errorf("Budget = %d, want 20", l.Budget)
	}
}

func TestNewLayoutPromptShiftsOneRow(t *testing.T) {
	g := core.PixelGeometry()
	normal := NewLayout(640, 480, core.ModeNormal, g)
	prompt := NewLayout(640, 480, core.ModePrompt, g)

	if !prompt.Prompt {
		t.Fatal("prompt mode should use prompt layout")
	}
	if d := normal.Band.Y - prompt.Band.Y; d != g.StatusRowHeight() {
		t.Errorf("band shift = %d, want %d", d, g.StatusRowHeight())
	}
	if d := normal.TextY - prompt.TextY; d != g.StatusRowHeight() {
		t.Errorf("text shift = %d, want %d", d, g.StatusRowHeight())
	}
	if prompt.PromptY != 463 {
		t.Errorf("PromptY = %d, want 463", prompt.PromptY)
	}
	if prompt.Band.Y+prompt.Band.Height > prompt.PromptY {
		t.Error("prompt row should lie below the shifted band")
	}
	wantRow := core.Rect{X: 0, Y: 462, Width: 640, Height: 18}
	if prompt.PromptRow != wantRow {
		t.Errorf("PromptRow = %+v, want %+v", prompt.PromptRow, wantRow)
	}
	if !normal.PromptRow.IsEmpty() {
		t.Error("normal layout should have no prompt row")
	}
}

func TestNewLayoutTerminal(t *testing.T) {
	g := core.TerminalGeometry()
	normal := NewLayout(80, 24, core.ModeNormal, g)
	if normal.Band.Y != 23 || normal.TextY != 23 {
		t.Errorf("normal band/text row = %d/%d, want 23/23", normal.Band.Y, normal.TextY)
	}

	prompt := NewLayout(80, 24, core.ModePrompt, g)
	if prompt.Band.Y != 22 || prompt.TextY != 22 || prompt.PromptY != 23 {
		t.Errorf("prompt band/text/prompt rows = %d/%d/%d, want 22/22/23",
			prompt.Band.Y, prompt.TextY, prompt.PromptY)
	}
}

func TestNewLayoutNarrowWindow(t *testing.T) {
	l := NewLayout(20, 480, core.ModeNormal, core.PixelGeometry())
	if l.Visible {
		t.Error("window narrower than one column should hide the status bar")
	}
	if l.Budget != 0 {
		t.Errorf("Budget = %d, want 0", l.Budget)
	}
}

func TestColumnX(t *testing.T) {
	want := []int{0, 160, 320, 480}
	for i, x := range want {
		if got := ColumnX(640, i); got != x {
			t.Errorf("ColumnX(640, %d) = %d, want %d", i, got, x)
		}
	}
}

func TestComposeFields(t *testing.T) {
	g := core.PixelGeometry()
	bar := StatusBar{Mode: "Normal", File: "main.go", Cmd: "dd", Msg: "errormessagetoolong"}

	// 320px wide: 80px columns, budget 10.
	l, texts := Compose(320, 200, core.ModeNormal, bar, "ignored", g)
	if l.Budget != 10 {
		t.Fatalf("Budget = %d, want 10", l.Budget)
	}
	want := []Text{
		{Text: "Normal", X: 0, Y: 183},
		{Text: "main.go", X: 80, Y: 183},
		{Text: "dd", X: 160, Y: 183},
		{Text: "error...", X: 240, Y: 183},
	}
	if len(texts) != len(want) {
		t.Fatalf("got %d texts, want %d: %+v", len(texts), len(want), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d = %+v, want %+v", i, texts[i], want[i])
		}
	}
}

func TestComposeSkipsEmptyFields(t *testing.T) {
	_, texts := Compose(640, 480, core.ModeNormal, StatusBar{Mode: "Insert"}, "", core.PixelGeometry())
	if len(texts) != 1 || texts[0].Text != "Insert" {
		t.Errorf("expected only the mode field, got %+v", texts)
	}
}

func TestComposePromptRow(t *testing.T) {
	g := core.PixelGeometry()
	long := "a prompt that is much longer than any single status column budget"

	_, normal := Compose(320, 200, core.ModeNormal, StatusBar{}, long, g)
	if len(normal) != 0 {
		t.Errorf("normal mode must not emit a prompt row, got %+v", normal)
	}

	_, texts := Compose(320, 200, core.ModePrompt, StatusBar{Mode: "Prompt"}, long, g)
	if len(texts) != 2 {
		t.Fatalf("expected mode field and prompt row, got %+v", texts)
	}
	if texts[0].Y != 165 {
		t.Errorf("field Y in prompt layout = %d, want 165", texts[0].Y)
	}
	p := texts[1]
	if p.Text != long || p.X != 0 || p.Y != 183 {
		t.Errorf("prompt row = %+v, want verbatim text at (0, 183)", p)
	}
}

func TestComposeNarrowWindowKeepsPrompt(t *testing.T) {
	_, texts := Compose(16, 100, core.ModePrompt, NewStatusBar(), "q", core.PixelGeometry())
	if len(texts) != 1 || texts[0].Text != "q" {
		t.Errorf("expected only the prompt row, got %+v", texts)
	}
}
