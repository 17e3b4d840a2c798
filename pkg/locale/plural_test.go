package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/herald/pkg/locale"
)

func TestPluralRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule     locale.PluralRule
		name     string
		expected map[int]string
	}{
		{
			name: "english",
			rule: locale.EnglishPluralRule,
			expected: map[int]string{
				0: locale.PluralOther, 1: locale.PluralOne, -1: locale.PluralOne, 2: locale.PluralOther,
			},
		},
		{
			name: "slavic",
			rule: locale.SlavicPluralRule,
			expected: map[int]string{
				0: locale.PluralMany, 1: locale.PluralOne, 2: locale.PluralFew, 5: locale.PluralMany,
				11: locale.PluralMany, 12: locale.PluralMany, 21: locale.PluralOne, 22: locale.PluralFew,
			},
		},
		{
			name: "polish",
			rule: locale.PolishPluralRule,
			expected: map[int]string{
				1: locale.PluralOne, 4: locale.PluralFew, 5: locale.PluralMany, 14: locale.PluralMany,
				21: locale.PluralMany, 24: locale.PluralFew,
			},
		},
		{
			name: "romance",
			rule: locale.RomancePluralRule,
			expected: map[int]string{
				0: locale.PluralOne, 1: locale.PluralOne, 2: locale.PluralOther, 1000000: locale.PluralMany,
			},
		},
		{
			name: "spanish",
			rule: locale.SpanishPluralRule,
			expected: map[int]string{
				0: locale.PluralOther, 1: locale.PluralOne, 1000000: locale.PluralMany,
			},
		},
		{
			name:     "asian",
			rule:     locale.AsianPluralRule,
			expected: map[int]string{0: locale.PluralOther, 1: locale.PluralOther, 100: locale.PluralOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for n, want := range tt.expected {
				require.Equal(t, want, tt.rule(n), "n=%d", n)
			}
		})
	}
}

func TestPluralRuleFor(t *testing.T) {
	t.Parallel()

	// Rules are funcs, so compare by behavior on a discriminating count.
	require.Equal(t, locale.PluralFew, locale.PluralRuleFor(language.Russian)(3))
	require.Equal(t, locale.PluralMany, locale.PluralRuleFor(language.Polish)(21))
	require.Equal(t, locale.PluralOne, locale.PluralRuleFor(language.French)(0))
	require.Equal(t, locale.PluralOther, locale.PluralRuleFor(language.Japanese)(1))
	require.Equal(t, locale.PluralOne, locale.PluralRuleFor(language.MustParse("en-GB"))(1))
	require.Equal(t, locale.PluralOther, locale.PluralRuleFor(language.Und)(0))
}

func TestWithPluralRule(t *testing.T) {
	t.Parallel()

	f := locale.New(language.English, locale.WithPluralRule(locale.AsianPluralRule))
	require.Equal(t, "1 seconds", f.FormatDuration(1e9))

	f = locale.New(language.English, locale.WithPluralRule(nil))
	require.Equal(t, "1 second", f.FormatDuration(1e9))
}
