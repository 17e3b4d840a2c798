package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/herald/pkg/locale"
)

func TestPredefined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      language.Tag
		dateTime string
		duration string
	}{
		{tag: language.English, dateTime: "03/05/2024 2:07 PM", duration: "1 hour 30 minutes"},
		{tag: language.German, dateTime: "05.03.2024 14:07", duration: "1 Stunde 30 Minuten"},
		{tag: language.French, dateTime: "05/03/2024 14:07", duration: "1 heure 30 minutes"},
		{tag: language.Spanish, dateTime: "05/03/2024 14:07", duration: "1 hora 30 minutos"},
		{tag: language.Portuguese, dateTime: "05/03/2024 14:07", duration: "1 hora 30 minutos"},
		{tag: language.Russian, dateTime: "05.03.2024 14:07", duration: "1 час 30 минут"},
		{tag: language.Polish, dateTime: "05.03.2024 14:07", duration: "1 godzina 30 minut"},
		{tag: language.Japanese, dateTime: "2024/03/05 14:07", duration: "1 時間 30 分"},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			t.Parallel()
			f := locale.Predefined(tt.tag)

			require.Equal(t, tt.dateTime, f.FormatDateTime(instant))
			require.Equal(t, tt.duration, f.FormatDuration(90*time.Minute))
		})
	}

	require.Len(t, locale.Supported(), len(tests))
}

func TestPredefined_PluralForms(t *testing.T) {
	t.Parallel()

	ru := locale.Predefined(language.Russian)
	require.Equal(t, "1 минута", ru.FormatDuration(time.Minute))
	require.Equal(t, "2 минуты", ru.FormatDuration(2*time.Minute))
	require.Equal(t, "5 минут", ru.FormatDuration(5*time.Minute))
	require.Equal(t, "21 минута", ru.FormatDuration(21*time.Minute))

	pl := locale.Predefined(language.Polish)
	require.Equal(t, "22 minuty", pl.FormatDuration(22*time.Minute))
	require.Equal(t, "21 minut", pl.FormatDuration(21*time.Minute))

	fr := locale.Predefined(language.French)
	require.Equal(t, "0 seconde", fr.FormatDuration(0))
}

func TestPredefined_Matching(t *testing.T) {
	t.Parallel()

	t.Run("regional variant keeps its tag", func(t *testing.T) {
		t.Parallel()
		tag := language.MustParse("de-AT")
		f := locale.Predefined(tag)

		require.Equal(t, tag, f.Tag())
		require.Equal(t, "05.03.2024 14:07", f.FormatDateTime(instant))
	})

	t.Run("unsupported language falls back to English", func(t *testing.T) {
		t.Parallel()
		f := locale.Predefined(language.Korean)

		require.Equal(t, "03/05/2024 2:07 PM", f.FormatDateTime(instant))
		require.Equal(t, "1 hour", f.FormatDuration(time.Hour))
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid tag", func(t *testing.T) {
		t.Parallel()
		f, err := locale.Parse("fr-CA")
		require.NoError(t, err)
		require.Equal(t, "05/03/2024 14:07", f.FormatDateTime(instant))
	})

	t.Run("invalid tag falls back to default", func(t *testing.T) {
		t.Parallel()
		f, err := locale.Parse("not a tag!")
		require.ErrorIs(t, err, locale.ErrInvalidTag)
		require.NotNil(t, f)
		require.Equal(t, language.English, f.Tag())
	})
}
