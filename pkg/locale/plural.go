package locale

import "golang.org/x/text/language"

// PluralRule determines which plural form to use for a given count.
// It follows Unicode CLDR guidelines for integer counts.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralOne   = "one"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// EnglishPluralRule covers English and Germanic languages.
// Categories: one (1), other (everything else including 0).
var EnglishPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule covers Russian, Ukrainian and similar languages.
// Categories: one (1, 21, 31...), few (2-4, 22-24...), many (everything else).
var SlavicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	mod10, mod100 := a%10, a%100

	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// PolishPluralRule differs from SlavicPluralRule in that only 1 itself is
// singular.
// Categories: one (1), few (2-4, 22-24...), many (everything else).
var PolishPluralRule PluralRule = func(n int) string {
	a := abs(n)
	if a == 1 {
		return PluralOne
	}
	mod10, mod100 := a%10, a%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// RomancePluralRule covers French and Portuguese, where zero is singular.
// Categories: one (0, 1), many (1,000,000+), other.
var RomancePluralRule PluralRule = func(n int) string {
	a := abs(n)
	if a <= 1 {
		return PluralOne
	}
	if a >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// SpanishPluralRule is simpler than other Romance languages.
// Categories: one (1), many (1,000,000+), other.
var SpanishPluralRule PluralRule = func(n int) string {
	a := abs(n)
	if a == 1 {
		return PluralOne
	}
	if a >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// AsianPluralRule covers languages without plural forms.
var AsianPluralRule PluralRule = func(_ int) string {
	return PluralOther
}

// PluralRuleFor returns the plural rule for the base language of tag.
// Unknown languages use EnglishPluralRule.
func PluralRuleFor(tag language.Tag) PluralRule {
	base, _ := tag.Base()

	switch base.String() {
	case "ru", "uk", "be", "hr", "sr", "bs":
		return SlavicPluralRule
	case "pl", "cs", "sk":
		return PolishPluralRule
	case "fr", "pt":
		return RomancePluralRule
	case "es", "it":
		return SpanishPluralRule
	case "ja", "zh", "ko", "th", "vi", "id":
		return AsianPluralRule
	default:
		return EnglishPluralRule
	}
}
