package macro

import (
	"strconv"
	"time"
)

// Formatter renders raw values for a locale.
// Implementations must be safe for concurrent use.
type Formatter interface {
	FormatNumber(n float64) string
	FormatDuration(d time.Duration) string
	FormatDateTime(t time.Time) string
}

// plainFormatter is used when no formatter is configured.
type plainFormatter struct{}

func (plainFormatter) FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func (plainFormatter) FormatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}

func (plainFormatter) FormatDateTime(t time.Time) string {
	return t.Format(time.RFC1123)
}
