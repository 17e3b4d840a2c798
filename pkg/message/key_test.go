package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/herald/pkg/macro"
	"github.com/dmitrymomot/herald/pkg/message"
)

func TestNewRecordKey(t *testing.T) {
	t.Parallel()

	k, err := message.NewRecordKey("PLAYER.DEATH")
	require.NoError(t, err)
	require.True(t, k.IsValid())
	require.Equal(t, "PLAYER.DEATH", k.String())
	require.Equal(t, message.MustRecordKey("PLAYER.DEATH"), k)

	for _, in := range []string{"", "player", "A..B", ".A", "A-B"} {
		_, err := message.NewRecordKey(in)
		require.ErrorIs(t, err, message.ErrInvalidRecordKey, in)
		require.ErrorIs(t, err, macro.ErrInvalidKey, in)
	}

	require.False(t, message.RecordKey{}.IsValid())
	require.Panics(t, func() { message.MustRecordKey("bad") })
}

func TestRecord(t *testing.T) {
	t.Parallel()

	key := message.MustRecordKey("WELCOME")

	d := message.Disabled(key)
	require.False(t, d.Enabled)
	require.Equal(t, key, d.Key)
	require.False(t, d.HasBody())
	require.Nil(t, d.Lines())
	require.True(t, d.Title.IsEmpty())

	rec := message.Record{Key: key, Body: "one\n\nthree\n"}
	require.Equal(t, []string{"one", "", "three"}, rec.Lines())
}
