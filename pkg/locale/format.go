package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// UnitNames maps plural categories to the word used for one time unit,
// e.g. {"one": "minute", "other": "minutes"}. PluralOther is the fallback.
type UnitNames map[string]string

func (u UnitNames) word(category string) string {
	if w, ok := u[category]; ok {
		return w
	}
	return u[PluralOther]
}

// Units holds the words used by FormatDuration.
type Units struct {
	Day    UnitNames
	Hour   UnitNames
	Minute UnitNames
	Second UnitNames
}

// Format contains the formatting rules of one locale.
// It is immutable after creation and safe for concurrent use.
type Format struct {
	tag            language.Tag
	printer        *message.Printer
	plural         PluralRule
	location       *time.Location
	units          Units
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
	fractionDigits int
}

// Option configures a Format during construction.
type Option func(*Format)

// New creates a Format for tag. Numbers are grouped and separated the way
// the language expects; without options the layouts and unit words are the
// English ones.
func New(tag language.Tag, opts ...Option) *Format {
	f := &Format{
		tag:            tag,
		printer:        message.NewPrinter(tag),
		plural:         PluralRuleFor(tag),
		units:          englishUnits,
		dateLayout:     "01/02/2006",
		timeLayout:     "3:04 PM",
		dateTimeLayout: "01/02/2006 3:04 PM",
		fractionDigits: 2,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithDateLayout sets the date layout (Go time layout).
func WithDateLayout(layout string) Option {
	return func(f *Format) {
		if layout != "" {
			f.dateLayout = layout
		}
	}
}

// WithTimeLayout sets the time layout (Go time layout).
func WithTimeLayout(layout string) Option {
	return func(f *Format) {
		if layout != "" {
			f.timeLayout = layout
		}
	}
}

// WithDateTimeLayout sets the date-time layout (Go time layout).
func WithDateTimeLayout(layout string) Option {
	return func(f *Format) {
		if layout != "" {
			f.dateTimeLayout = layout
		}
	}
}

// WithTimeZone converts instants to loc before formatting them.
// A nil location keeps each instant in its own zone.
func WithTimeZone(loc *time.Location) Option {
	return func(f *Format) {
		f.location = loc
	}
}

// WithUnits sets the duration unit words.
func WithUnits(u Units) Option {
	return func(f *Format) {
		f.units = u
	}
}

// WithPluralRule overrides the plural rule derived from the tag.
// A nil rule is ignored.
func WithPluralRule(rule PluralRule) Option {
	return func(f *Format) {
		if rule != nil {
			f.plural = rule
		}
	}
}

// WithFractionDigits sets the maximum number of fraction digits printed by
// FormatNumber. Negative values are ignored.
func WithFractionDigits(n int) Option {
	return func(f *Format) {
		if n >= 0 {
			f.fractionDigits = n
		}
	}
}

// Tag returns the language of the format.
func (f *Format) Tag() language.Tag {
	return f.tag
}

// FormatNumber formats n with the locale's grouping and decimal separators.
func (f *Format) FormatNumber(n float64) string {
	return f.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(f.fractionDigits)))
}

// FormatDuration spells d out in days, hours, minutes and seconds, skipping
// zero units. Durations are rounded to the second; anything shorter than a
// second renders as zero seconds.
func (f *Format) FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Second)
	if d == 0 {
		return f.unit(0, f.units.Second)
	}

	parts := make([]string, 0, 4)
	steps := []struct {
		size  time.Duration
		names UnitNames
	}{
		{24 * time.Hour, f.units.Day},
		{time.Hour, f.units.Hour},
		{time.Minute, f.units.Minute},
		{time.Second, f.units.Second},
	}
	for _, s := range steps {
		n := int(d / s.size)
		d -= time.Duration(n) * s.size
		if n > 0 {
			parts = append(parts, f.unit(n, s.names))
		}
	}

	return strings.Join(parts, " ")
}

func (f *Format) unit(n int, names UnitNames) string {
	count := f.printer.Sprint(number.Decimal(n))
	word := names.word(f.plural(n))
	if word == "" {
		return count
	}
	return count + " " + word
}

// FormatDate formats the date part of t.
func (f *Format) FormatDate(t time.Time) string {
	return f.in(t).Format(f.dateLayout)
}

// FormatTime formats the time-of-day part of t.
func (f *Format) FormatTime(t time.Time) string {
	return f.in(t).Format(f.timeLayout)
}

// FormatDateTime formats t with the locale's date-time layout.
func (f *Format) FormatDateTime(t time.Time) string {
	return f.in(t).Format(f.dateTimeLayout)
}

func (f *Format) in(t time.Time) time.Time {
	if f.location != nil {
		return t.In(f.location)
	}
	return t
}
