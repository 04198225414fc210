package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Document is a file loaded for viewing. It implements viewport.BufferReader.
type Document struct {
	// Path is the file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	lines []string
}

// NewDocument creates a document from file content.
func NewDocument(path string, content []byte) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}
	return &Document{
		Path:  path,
		Name:  name,
		lines: splitLines(string(content)),
	}
}

// NewScratchDocument creates an empty, unnamed document.
func NewScratchDocument() *Document {
	return NewDocument("", nil)
}

// LoadDocument reads a file. A file that does not exist yet opens as an
// empty document with that path.
func LoadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(path, nil), nil
		}
		return nil, NewOperationError("open", path, err)
	}
	return NewDocument(path, content), nil
}

// IsScratch returns true if the document has no path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineText returns the text of a line, or "" when out of range.
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.lines) {
		return ""
	}
	return d.lines[line]
}

// splitLines splits on LF or CRLF. A trailing newline does not start
// another line and empty content has no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
