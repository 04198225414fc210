package viewport

import (
	"testing"

	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/highlight"
)

func newTestComposer(cols, rows int) Composer {
	return NewComposer(nil, Size{Cols: cols, Rows: rows})
}

func cellAt(cells []Cell, col, row int) (Cell, bool) {
	for _, c := range cells {
		if c.Col == col && c.Row == row {
			return c, true
		}
	}
	return Cell{}, false
}

func TestComposeCrossLineString(t *testing.T) {
	c := newTestComposer(0, 0)
	buf := Lines{"ab'cd", "ef'gh"}
	cells := c.Compose(buf, Cursor{X: 0, Y: 0}, Scroll{}, Options{Highlight: true})

	D, S := highlight.ClassDefault, highlight.ClassString
	want := [][]highlight.Class{
		{D, D, S, S, S},
		// The unmatched quote on row 0 carries string state into row 1.
		{S, S, S, D, D},
	}

	if len(cells) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(cells))
	}
	for row, classes := range want {
		for col, class := range classes {
			cell, ok := cellAt(cells, col, row)
			if !ok {
				t.Fatalf("missing cell (%d, %d)", col, row)
			}
			if cell.Class != class {
				t.Errorf("cell (%d, %d) %q class = %v, want %v", col, row, cell.Rune, cell.Class, class)
			}
		}
	}
}

func TestComposeRowMajorOrder(t *testing.T) {
	c := newTestComposer(0, 0)
	cells := c.Compose(Lines{"ab", "c"}, Cursor{X: 9, Y: 9}, Scroll{}, Options{})

	wantRunes := []rune{'a', 'b', 'c'}
	if len(cells) != len(wantRunes) {
		t.Fatalf("expected %d cells, got %d", len(wantRunes), len(cells))
	}
	for i, r := range wantRunes {
		if cells[i].Rune != r {
			t.Errorf("cell %d = %q, want %q", i, cells[i].Rune, r)
		}
	}
	if cells[2].Col != 0 || cells[2].Row != 1 {
		t.Errorf("third cell at (%d, %d), want (0, 1)", cells[2].Col, cells[2].Row)
	}
}

func TestComposeCursorDimmed(t *testing.T) {
	pal := highlight.DefaultPalette()
	c := NewComposer(pal, Size{})

	tests := []struct {
		name  string
		line  string
		x     int
		class highlight.Class
	}{
		{"default", "abc", 1, highlight.ClassDefault},
		{"operator", "a+b", 1, highlight.ClassOperator},
		{"string", `"x"`, 1, highlight.ClassString},
		{"numeric", "a1", 1, highlight.ClassNumeric},
		{"bracket", "(", 0, highlight.ClassBracket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := c.Compose(Lines{tt.line}, Cursor{X: tt.x}, Scroll{}, Options{Highlight: true})
			cell, ok := cellAt(cells, tt.x, 0)
			if !ok {
				t.Fatal("cursor cell not emitted")
			}
			if !cell.Cursor {
				t.Error("cell should be flagged as cursor")
			}
			base := pal.Color(tt.class)
			want := core.ColorFromRGB(base.R/3, base.G/3, base.B/3)
			if cell.Color != want {
				t.Errorf("cursor color = %v, want %v", cell.Color, want)
			}
			for _, other := range cells {
				if other.Col != tt.x && (other.Cursor || other.Color != pal.Color(other.Class)) {
					t.Errorf("non-cursor cell %q has color %v", other.Rune, other.Color)
				}
			}
		})
	}
}

func TestComposeTabs(t *testing.T) {
	c := newTestComposer(0, 0)
	// The tab sits inside a string but is still drawn plain.
	cells := c.Compose(Lines{"'\tx'"}, Cursor{X: 9}, Scroll{}, Options{Highlight: true})

	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	tab := cells[1]
	if tab.Rune != ' ' {
		t.Errorf("tab glyph = %q, want space", tab.Rune)
	}
	if tab.Class != highlight.ClassDefault {
		t.Errorf("tab class = %v, want default", tab.Class)
	}
	if cells[2].Col != 2 {
		t.Errorf("tab should occupy one cell, next cell at col %d", cells[2].Col)
	}
	if cells[2].Class != highlight.ClassString {
		t.Errorf("char after tab class = %v, want string", cells[2].Class)
	}
}

func TestComposeScrollTranslation(t *testing.T) {
	c := newTestComposer(0, 0)
	buf := Lines{"0123", "abcd", "efgh"}
	cells := c.Compose(buf, Cursor{X: 9, Y: 9}, Scroll{X: 1, Y: 1}, Options{})

	cell, ok := cellAt(cells, 0, 0)
	if !ok || cell.Rune != 'b' {
		t.Errorf("cell (0, 0) = %q, want 'b'", cell.Rune)
	}
	cell, ok = cellAt(cells, 2, 1)
	if !ok || cell.Rune != 'h' {
		t.Errorf("cell (2, 1) = %q, want 'h'", cell.Rune)
	}
	for _, c := range cells {
		if c.Col < 0 || c.Row < 0 {
			t.Errorf("cell %q emitted off screen at (%d, %d)", c.Rune, c.Col, c.Row)
		}
	}
	if len(cells) != 6 {
		t.Errorf("expected 6 visible cells, got %d", len(cells))
	}
}

func TestComposeScrolledLinesStillClassified(t *testing.T) {
	c := newTestComposer(0, 0)
	// Row 0 opens a string and is scrolled away.
	cells := c.Compose(Lines{`"open`, "abc"}, Cursor{X: 9, Y: 9}, Scroll{Y: 1}, Options{Highlight: true})

	for _, cell := range cells {
		if cell.Class != highlight.ClassString {
			t.Errorf("cell %q class = %v, want string", cell.Rune, cell.Class)
		}
	}
}

func TestComposeClipsToSize(t *testing.T) {
	c := newTestComposer(2, 1)
	cells := c.Compose(Lines{"abc", "def"}, Cursor{X: 9, Y: 9}, Scroll{}, Options{})

	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].Rune != 'a' || cells[1].Rune != 'b' {
		t.Errorf("unexpected cells %q %q", cells[0].Rune, cells[1].Rune)
	}
}

func TestComposeEmptyBuffer(t *testing.T) {
	c := newTestComposer(80, 24)
	if cells := c.Compose(Lines{}, Cursor{}, Scroll{}, Options{Highlight: true}); len(cells) != 0 {
		t.Errorf("empty buffer produced %d cells", len(cells))
	}
	if cells := c.Compose(nil, Cursor{}, Scroll{}, Options{}); len(cells) != 0 {
		t.Errorf("nil buffer produced %d cells", len(cells))
	}
}

func TestComposeCursorAtLineEnd(t *testing.T) {
	c := newTestComposer(0, 0)
	cells := c.Compose(Lines{"ab"}, Cursor{X: 2}, Scroll{}, Options{})
	for _, cell := range cells {
		if cell.Cursor {
			t.Errorf("cell %q should not be the cursor", cell.Rune)
		}
	}

	col, row, visible := c.CursorCell(Cursor{X: 2}, Scroll{})
	if col != 2 || row != 0 || !visible {
		t.Errorf("CursorCell = (%d, %d, %v), want (2, 0, true)", col, row, visible)
	}
}

func TestComposeFromInjectedState(t *testing.T) {
	c := newTestComposer(0, 0)
	cells, st := c.ComposeFrom(highlight.State{InsideString: true}, Lines{"ab'c"}, Cursor{X: 9}, Scroll{}, Options{Highlight: true})

	want := []highlight.Class{highlight.ClassString, highlight.ClassString, highlight.ClassString, highlight.ClassDefault}
	for i, class := range want {
		if cells[i].Class != class {
			t.Errorf("cell %d class = %v, want %v", i, cells[i].Class, class)
		}
	}
	if st.InsideString {
		t.Error("final state should be outside a string")
	}
}

func TestComposeHighlightOff(t *testing.T) {
	c := newTestComposer(0, 0)
	cells, st := c.ComposeFrom(highlight.State{}, Lines{`"1+(`}, Cursor{X: 9}, Scroll{}, Options{})
	for _, cell := range cells {
		if cell.Class != highlight.ClassDefault {
			t.Errorf("cell %q class = %v, want default", cell.Rune, cell.Class)
		}
	}
	if st.InsideString {
		t.Error("state must not change with highlighting off")
	}
}

func TestCursorCellAndMarkerRow(t *testing.T) {
	c := newTestComposer(10, 5)

	tests := []struct {
		cur         Cursor
		scroll      Scroll
		wantCol     int
		wantRow     int
		wantVisible bool
		wantMarker  bool
	}{
		{Cursor{X: 3, Y: 2}, Scroll{}, 3, 2, true, true},
		{Cursor{X: 3, Y: 2}, Scroll{X: 5}, -2, 2, false, true},
		{Cursor{X: 3, Y: 7}, Scroll{Y: 1}, 3, 6, false, false},
	}
	for _, tt := range tests {
		col, row, visible := c.CursorCell(tt.cur, tt.scroll)
		if col != tt.wantCol || row != tt.wantRow || visible != tt.wantVisible {
			t.Errorf("CursorCell(%+v, %+v) = (%d, %d, %v), want (%d, %d, %v)",
				tt.cur, tt.scroll, col, row, visible, tt.wantCol, tt.wantRow, tt.wantVisible)
		}
		if _, ok := c.MarkerRow(tt.cur, tt.scroll); ok != tt.wantMarker {
			t.Errorf("MarkerRow(%+v, %+v) visible = %v, want %v", tt.cur, tt.scroll, ok, tt.wantMarker)
		}
	}
}

func TestLines(t *testing.T) {
	l := Lines{"a", "b"}
	if l.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", l.LineCount())
	}
	if l.LineText(1) != "b" {
		t.Errorf("LineText(1) = %q, want b", l.LineText(1))
	}
	if l.LineText(5) != "" || l.LineText(-1) != "" {
		t.Error("out of range lines should be empty")
	}
}
