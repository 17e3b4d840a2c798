package message

import (
	"strings"
	"time"
)

// Default title timings, matching what clients show without explicit values.
const (
	DefaultFadeIn  = 500 * time.Millisecond
	DefaultStay    = 3500 * time.Millisecond
	DefaultFadeOut = time.Second
)

// Title is the on-screen part of a record.
type Title struct {
	Text     string
	Subtitle string
	FadeIn   time.Duration
	Stay     time.Duration
	FadeOut  time.Duration
}

// IsEmpty reports whether there is nothing to show.
func (t Title) IsEmpty() bool {
	return t.Text == "" && t.Subtitle == ""
}

// Record is one deliverable message: its templates plus delivery settings.
// Records are values; processing returns a substituted copy.
type Record struct {
	Key         RecordKey
	Body        string
	Title       Title
	RepeatDelay time.Duration
	Enabled     bool
}

// Disabled returns the record used when key cannot be delivered: it is
// disabled and has no content, so the pipeline stops harmlessly.
func Disabled(key RecordKey) Record {
	return Record{Key: key}
}

// HasBody reports whether the record has chat content.
func (r Record) HasBody() bool {
	return strings.TrimSpace(r.Body) != ""
}

// Lines splits the body into chat lines. Blank lines inside the body are
// kept; a trailing newline is not.
func (r Record) Lines() []string {
	if !r.HasBody() {
		return nil
	}
	return strings.Split(strings.TrimRight(r.Body, "\n"), "\n")
}
