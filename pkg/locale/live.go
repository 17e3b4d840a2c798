package locale

import (
	"sync/atomic"
	"time"
)

// Live is a Format that can be swapped at runtime, e.g. after a
// configuration reload. Readers always see a complete Format.
type Live struct {
	current atomic.Pointer[Format]
}

// NewLive creates a Live holding f, or the default format when f is nil.
func NewLive(f *Format) *Live {
	l := &Live{}
	if f == nil {
		f = Default()
	}
	l.current.Store(f)
	return l
}

// Load returns the current format.
func (l *Live) Load() *Format {
	return l.current.Load()
}

// Store replaces the current format.
func (l *Live) Store(f *Format) error {
	if f == nil {
		return ErrNilFormat
	}
	l.current.Store(f)
	return nil
}

func (l *Live) FormatNumber(n float64) string        { return l.Load().FormatNumber(n) }
func (l *Live) FormatDuration(d time.Duration) string { return l.Load().FormatDuration(d) }
func (l *Live) FormatDateTime(t time.Time) string     { return l.Load().FormatDateTime(t) }
