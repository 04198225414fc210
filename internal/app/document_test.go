package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single without newline", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		got := splitLines(tt.content)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: line %d = %q, want %q", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDocumentLines(t *testing.T) {
	doc := NewDocument("/tmp/main.go", []byte("package main\n\nfunc main() {}\n"))

	if doc.Name != "main.go" {
		t.Errorf("Name = %q, want main.go", doc.Name)
	}
	if doc.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", doc.LineCount())
	}
	if got := doc.LineText(2); got != "func main() {}" {
		t.Errorf("LineText(2) = %q", got)
	}
	if doc.LineText(-1) != "" || doc.LineText(3) != "" {
		t.Error("out of range lines should be empty")
	}
	if doc.IsScratch() {
		t.Error("document with a path is not scratch")
	}
}

func TestScratchDocument(t *testing.T) {
	doc := NewScratchDocument()
	if !doc.IsScratch() || doc.Name != "Untitled" || doc.LineCount() != 0 {
		t.Errorf("unexpected scratch document %+v", doc)
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("one\ntwo"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if doc.LineCount() != 2 || doc.Name != "notes.txt" {
		t.Errorf("unexpected document %+v", doc)
	}

	missing := filepath.Join(dir, "new.txt")
	doc, err = LoadDocument(missing)
	if err != nil {
		t.Fatalf("missing file should open empty: %v", err)
	}
	if doc.Path != missing || doc.LineCount() != 0 {
		t.Errorf("unexpected document for missing file %+v", doc)
	}

	_, err = LoadDocument(dir)
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" || opErr.Target != dir {
		t.Errorf("reading a directory = %v, want open OperationError", err)
	}
}
