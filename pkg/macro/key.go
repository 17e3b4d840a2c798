package macro

import (
	"strconv"
	"strings"
)

// Separator joins the segments of a dotted key.
const Separator = "."

// Key is a validated dotted-path macro identifier such as PLAYER.LOCATION.X.
//
// Keys are only produced by NewKey, MustKey and the derivation helpers, so a
// non-zero Key always satisfies the key grammar. The zero Key is the invalid
// key: it reports IsValid() == false and never equals a valid key.
type Key struct {
	s string
}

// NewKey validates s and returns it as a Key.
// Invalid input yields the zero Key and an *InvalidKeyError.
func NewKey(s string) (Key, error) {
	if err := Validate(s); err != nil {
		return Key{}, err
	}
	return Key{s: s}, nil
}

// MustKey is like NewKey but panics on invalid input.
// Use it for compile-time constant key names.
func MustKey(s string) Key {
	k, err := NewKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate reports whether s matches ^[A-Z][A-Z0-9_]*(\.[A-Z][A-Z0-9_]*)*$.
// It is shared by every key type built on the macro grammar.
func Validate(s string) error {
	if s == "" {
		return &InvalidKeyError{Input: s, Reason: "empty"}
	}

	segStart := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' {
			continue
		}
		if i == segStart {
			return &InvalidKeyError{Input: s, Reason: "empty segment"}
		}
		if err := validateSegment(s, s[segStart:i]); err != nil {
			return err
		}
		segStart = i + 1
	}

	return nil
}

func validateSegment(input, seg string) error {
	if c := seg[0]; c < 'A' || c > 'Z' {
		return &InvalidKeyError{Input: input, Reason: "segment " + strconv.Quote(seg) + " must start with an uppercase letter"}
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return &InvalidKeyError{Input: input, Reason: "segment " + strconv.Quote(seg) + " contains " + strconv.QuoteRune(rune(c))}
	}
	return nil
}

// IsValid reports whether k was produced from valid input.
func (k Key) IsValid() bool {
	return k.s != ""
}

// String returns the dotted representation, or "" for the invalid key.
func (k Key) String() string {
	return k.s
}

// Append derives a child key by adding one or more dotted segments.
// Appending to the invalid key, or appending an invalid suffix, fails.
func (k Key) Append(suffix string) (Key, error) {
	if !k.IsValid() {
		return Key{}, &InvalidKeyError{Input: suffix, Reason: "cannot append to invalid key"}
	}
	return NewKey(k.s + Separator + suffix)
}

// Child is Append for suffixes known to be valid, such as the capability
// suffix constants. It returns the invalid key instead of an error.
func (k Key) Child(suffix string) Key {
	child, err := k.Append(suffix)
	if err != nil {
		return Key{}
	}
	return child
}

// Base returns the leading segment: PLAYER for PLAYER.LOCATION.X.
func (k Key) Base() Key {
	if i := strings.IndexByte(k.s, '.'); i > 0 {
		return Key{s: k.s[:i]}
	}
	return k
}

// Segments splits the key on the separator.
func (k Key) Segments() []string {
	if !k.IsValid() {
		return nil
	}
	return strings.Split(k.s, Separator)
}

// Depth is the number of segments in the key.
func (k Key) Depth() int {
	if !k.IsValid() {
		return 0
	}
	return strings.Count(k.s, Separator) + 1
}

// HasPrefix reports whether k equals p or lies beneath it in the dotted tree.
func (k Key) HasPrefix(p Key) bool {
	if !k.IsValid() || !p.IsValid() {
		return false
	}
	return k.s == p.s || strings.HasPrefix(k.s, p.s+Separator)
}
