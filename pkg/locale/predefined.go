package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

var englishUnits = Units{
	Day:    UnitNames{PluralOne: "day", PluralOther: "days"},
	Hour:   UnitNames{PluralOne: "hour", PluralOther: "hours"},
	Minute: UnitNames{PluralOne: "minute", PluralOther: "minutes"},
	Second: UnitNames{PluralOne: "second", PluralOther: "seconds"},
}

// supported lists the predefined locales; the first entry is the default.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Portuguese,
	language.Russian,
	language.Polish,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

var predefined = map[language.Tag]func(language.Tag) *Format{
	language.English: func(tag language.Tag) *Format {
		return New(tag)
	},
	language.German: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02.01.2006 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOne: "Tag", PluralOther: "Tage"},
				Hour:   UnitNames{PluralOne: "Stunde", PluralOther: "Stunden"},
				Minute: UnitNames{PluralOne: "Minute", PluralOther: "Minuten"},
				Second: UnitNames{PluralOne: "Sekunde", PluralOther: "Sekunden"},
			}),
		)
	},
	language.French: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOne: "jour", PluralOther: "jours"},
				Hour:   UnitNames{PluralOne: "heure", PluralOther: "heures"},
				Minute: UnitNames{PluralOne: "minute", PluralOther: "minutes"},
				Second: UnitNames{PluralOne: "seconde", PluralOther: "secondes"},
			}),
		)
	},
	language.Spanish: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOne: "día", PluralOther: "días"},
				Hour:   UnitNames{PluralOne: "hora", PluralOther: "horas"},
				Minute: UnitNames{PluralOne: "minuto", PluralOther: "minutos"},
				Second: UnitNames{PluralOne: "segundo", PluralOther: "segundos"},
			}),
		)
	},
	language.Portuguese: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOne: "dia", PluralOther: "dias"},
				Hour:   UnitNames{PluralOne: "hora", PluralOther: "horas"},
				Minute: UnitNames{PluralOne: "minuto", PluralOther: "minutos"},
				Second: UnitNames{PluralOne: "segundo", PluralOther: "segundos"},
			}),
		)
	},
	language.Russian: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02.01.2006 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOne: "день", PluralFew: "дня", PluralOther: "дней"},
				Hour:   UnitNames{PluralOne: "час", PluralFew: "часа", PluralOther: "часов"},
				Minute: UnitNames{PluralOne: "минута", PluralFew: "минуты", PluralOther: "минут"},
				Second: UnitNames{PluralOne: "секунда", PluralFew: "секунды", PluralOther: "секунд"},
			}),
		)
	},
	language.Polish: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02.01.2006 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOne: "dzień", PluralOther: "dni"},
				Hour:   UnitNames{PluralOne: "godzina", PluralFew: "godziny", PluralOther: "godzin"},
				Minute: UnitNames{PluralOne: "minuta", PluralFew: "minuty", PluralOther: "minut"},
				Second: UnitNames{PluralOne: "sekunda", PluralFew: "sekundy", PluralOther: "sekund"},
			}),
		)
	},
	language.Japanese: func(tag language.Tag) *Format {
		return New(tag,
			WithDateLayout("2006/01/02"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("2006/01/02 15:04"),
			WithUnits(Units{
				Day:    UnitNames{PluralOther: "日"},
				Hour:   UnitNames{PluralOther: "時間"},
				Minute: UnitNames{PluralOther: "分"},
				Second: UnitNames{PluralOther: "秒"},
			}),
		)
	},
}

// Supported returns the languages that have predefined formats.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the English format.
func Default() *Format {
	return Predefined(language.English)
}

// Predefined returns the format of the supported language closest to tag.
// Regional variants share their language's layouts; unsupported languages
// get the English format.
func Predefined(tag language.Tag) *Format {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return New(supported[0])
	}
	return predefined[supported[idx]](tag)
}

// Parse returns the predefined format for a BCP-47 string such as "de-AT".
// Invalid input yields the default format together with an error wrapping
// ErrInvalidTag, so callers may log and continue.
func Parse(s string) (*Format, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Default(), fmt.Errorf("%w %q: %w", ErrInvalidTag, s, err)
	}
	return Predefined(tag), nil
}
