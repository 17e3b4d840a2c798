package macro

import "strings"

// Value is a formatted macro value: either resolved text or Unresolved.
//
// Unresolved keeps string maps total without magic strings. It is rendered
// as the replacer's unknown text.
type Value struct {
	text     string
	resolved bool
}

// Unresolved marks a key that is derivable but has no usable value.
var Unresolved = Value{}

// Text returns a resolved value.
func Text(s string) Value {
	return Value{text: s, resolved: true}
}

// Resolved reports whether v carries text.
func (v Value) Resolved() bool {
	return v.resolved
}

// String returns the text, or "" when unresolved.
func (v Value) String() string {
	return v.text
}

// Or returns the text, or fallback when v is unresolved.
func (v Value) Or(fallback string) string {
	if !v.resolved {
		return fallback
	}
	return v.text
}

func (v Value) blank() bool {
	return v.resolved && strings.TrimSpace(v.text) == ""
}
