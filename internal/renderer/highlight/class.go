// Package highlight provides the per-character syntax classifier used by
// the viewport compositor.
package highlight

import "strings"

// Class is the color bucket a character is drawn with.
type Class uint8

// Color classes.
const (
	ClassDefault Class = iota
	ClassString
	ClassOperator
	ClassPunctuation
	ClassBracket
	ClassNumeric
)

var classNames = [...]string{
	ClassDefault:     "default",
	ClassString:      "string",
	ClassOperator:    "operator",
	ClassPunctuation: "punctuation",
	ClassBracket:     "bracket",
	ClassNumeric:     "numeric",
}

// String returns the lowercase class name.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// ParseClass converts a class name to a Class. Matching is case-insensitive.
func ParseClass(name string) (Class, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return ClassDefault, false
}

// Classes returns every class in declaration order.
func Classes() []Class {
	out := make([]Class, len(classNames))
	for i := range classNames {
		out[i] = Class(i)
	}
	return out
}
