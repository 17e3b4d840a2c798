package macro

import (
	"iter"
	"regexp"
)

// Default placeholder delimiters.
const (
	DefaultLeftDelimiter  = "{"
	DefaultRightDelimiter = "}"
)

// Pattern selects what part of a placeholder a Matcher captures.
type Pattern int

const (
	// PatternBase captures only the leading segment: {PLAYER.LOCATION.X} -> PLAYER.
	PatternBase Pattern = iota
	// PatternFull captures the whole dotted path: {PLAYER.LOCATION.X} -> PLAYER.LOCATION.X.
	PatternFull
)

const (
	segmentExpr = `[A-Z][A-Z0-9_]*`
	pathExpr    = `(?:\.` + segmentExpr + `)*`
)

// Matcher extracts placeholder keys from templates.
// It is immutable and safe for concurrent use.
type Matcher struct {
	base  *regexp.Regexp
	full  *regexp.Regexp
	left  string
	right string
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithDelimiters sets the placeholder delimiter pair.
// Empty delimiters keep the defaults.
func WithDelimiters(left, right string) MatcherOption {
	return func(m *Matcher) {
		if left != "" && right != "" {
			m.left = left
			m.right = right
		}
	}
}

// NewMatcher creates a Matcher. Without options it matches {KEY} placeholders.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		left:  DefaultLeftDelimiter,
		right: DefaultRightDelimiter,
	}
	for _, opt := range opts {
		opt(m)
	}

	l, r := regexp.QuoteMeta(m.left), regexp.QuoteMeta(m.right)
	m.base = regexp.MustCompile(l + `(` + segmentExpr + `)` + pathExpr + r)
	m.full = regexp.MustCompile(l + `(` + segmentExpr + pathExpr + `)` + r)

	return m
}

// Match lazily yields every placeholder key in template, in order of
// occurrence, duplicates included. Captures that fail key validation are
// skipped silently.
func (m *Matcher) Match(template string, p Pattern) iter.Seq[Key] {
	re := m.full
	if p == PatternBase {
		re = m.base
	}

	return func(yield func(Key) bool) {
		rest := template
		for rest != "" {
			loc := re.FindStringSubmatchIndex(rest)
			if loc == nil {
				return
			}
			if key, err := NewKey(rest[loc[2]:loc[3]]); err == nil {
				if !yield(key) {
					return
				}
			}
			rest = rest[loc[1]:]
		}
	}
}

// Placeholder renders key wrapped in the matcher's delimiters.
func (m *Matcher) Placeholder(key Key) string {
	return m.left + key.String() + m.right
}

// Distinct filters seq down to first occurrences.
func Distinct(seq iter.Seq[Key]) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		seen := make(map[Key]struct{})
		for k := range seq {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(k) {
				return
			}
		}
	}
}
