// Package locale formats numbers, durations and instants for a language.
//
// A Format is built from a BCP-47 tag. Numbers are rendered through
// golang.org/x/text/message printers, so grouping and decimal separators
// follow CLDR data for the tag. Date and time layouts, the time zone and
// the words used for duration units are configured with options.
//
//	f := locale.New(language.German,
//		locale.WithDateTimeLayout("02.01.2006 15:04"),
//		locale.WithTimeZone(berlin),
//	)
//	f.FormatNumber(1234.5) // "1.234,5"
//
// # Predefined Formats
//
// Predefined returns ready-made formats for English, German, French,
// Spanish, Portuguese, Russian, Polish and Japanese. Regional variants
// match their language; anything else falls back to English. Parse does
// the same for a tag string and reports invalid input while still
// returning a usable format:
//
//	f, err := locale.Parse(cfg.Locale)
//	if err != nil {
//		logger.Warn("invalid locale, using default", "error", err)
//	}
//
// # Plural Rules
//
// Duration unit words are chosen by a PluralRule. PluralRuleFor picks the
// rule for a language; WithPluralRule overrides it.
//
// # Reloading
//
// Format values are immutable. Live wraps one behind an atomic pointer and
// implements the same formatting methods, so it can be handed out once and
// switched to a new Format with Store.
package locale
