package highlight

// State is the classifier state carried from one character to the next.
// A single State is threaded through a whole render pass, so an unclosed
// quote on one line keeps the following lines in string mode.
type State struct {
	InsideString bool
}

// rule assigns a class to every rune in its set.
type rule struct {
	set   string
	class Class
}

// rules are checked in order; the first set containing the rune wins.
var rules = []rule{
	{set: "!@#$%^&|*+-/:=<>", class: ClassOperator},
	{set: ".,", class: ClassPunctuation},
	{set: "()[]{}", class: ClassBracket},
	{set: "0123456789", class: ClassNumeric},
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}

// Classify returns the color class of r and updates st.
//
// When enabled is false every rune is ClassDefault and st is left alone.
// Quotes toggle st.InsideString and are themselves ClassString, as is
// every rune while inside a string.
func Classify(r rune, st *State, enabled bool) Class {
	if !enabled {
		return ClassDefault
	}
	if isQuote(r) {
		st.InsideString = !st.InsideString
		return ClassString
	}
	if st.InsideString {
		return ClassString
	}
	return classOf(r)
}

// classOf classifies a rune outside of a string.
func classOf(r rune) Class {
	for _, ru := range rules {
		for _, m := range ru.set {
			if m == r {
				return ru.class
			}
		}
	}
	return ClassDefault
}
