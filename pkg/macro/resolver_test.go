package macro_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/herald/pkg/macro"
)

func TestAtomicResolver(t *testing.T) {
	t.Parallel()

	r := macro.NewAtomicResolver()
	id := uuid.MustParse("6f1c2e1a-3b7d-4a51-9c55-0e7a4f0b9d21")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		value    any
		name     string
		expected string
		resolved bool
		present  bool
	}{
		{name: "string", value: "Steve", expected: "Steve", resolved: true, present: true},
		{name: "bool", value: true, expected: "true", resolved: true, present: true},
		{name: "int", value: 42, expected: "42", resolved: true, present: true},
		{name: "uint8", value: uint8(7), expected: "7", resolved: true, present: true},
		{name: "float", value: 1.5, expected: "1.5", resolved: true, present: true},
		{name: "duration", value: 90 * time.Second, expected: "1m30s", resolved: true, present: true},
		{name: "time", value: at, expected: at.Format(time.RFC1123), resolved: true, present: true},
		{name: "uuid", value: id, expected: id.String(), resolved: true, present: true},
		{name: "stringer", value: petName("rex"), expected: "atomic:rex", resolved: true, present: true},
		{name: "negative duration", value: -time.Second, present: true},
		{name: "zero time", value: time.Time{}, present: true},
		{name: "nil uuid", value: uuid.Nil, present: true},
		{name: "unresolved", value: macro.Unresolved, present: true},
		{name: "blank string is discarded", value: "  "},
		{name: "unsupported type", value: struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := r.Resolve(macro.MustKey("V"), objects("V", tt.value))
			v, ok := out.Get(macro.MustKey("V"))
			require.Equal(t, tt.present, ok)
			if !tt.present {
				require.Equal(t, 0, out.Len())
				return
			}
			require.Equal(t, tt.resolved, v.Resolved())
			if tt.resolved {
				require.Equal(t, tt.expected, v.String())
			}
		})
	}

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, r.Resolve(macro.MustKey("V"), nil).Len())
	})
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	reg, err := macro.NewRegistry()
	require.NoError(t, err)

	t.Run("absent key gives empty result", func(t *testing.T) {
		t.Parallel()
		r := macro.NewCompositeResolver(reg)
		require.Equal(t, 0, r.Resolve(macro.MustKey("ITEM"), objects()).Len())
	})

	t.Run("merges every matching capability", func(t *testing.T) {
		t.Parallel()
		r := macro.NewCompositeResolver(reg)
		out := r.Resolve(macro.MustKey("ITEM"), objects("ITEM", item{name: "Stick", count: 5}))

		name, ok := value(out, "ITEM.DISPLAY_NAME")
		require.True(t, ok)
		require.Equal(t, "Stick", name)

		qty, ok := value(out, "ITEM.QUANTITY")
		require.True(t, ok)
		require.Equal(t, "5", qty)
	})

	t.Run("recovers from panicking adapters", func(t *testing.T) {
		t.Parallel()
		r := macro.NewCompositeResolver(reg)
		require.NotPanics(t, func() {
			out := r.Resolve(macro.MustKey("X"), objects("X", panicky{}))
			require.Equal(t, 0, out.Len())
		})
	})

	t.Run("recovers from panicking bridges", func(t *testing.T) {
		t.Parallel()
		bridged, err := macro.NewRegistry(
			macro.WithAdapter("host.npc", func() macro.Adapter {
				return macro.Bridge("host.npc", macro.Builtin(macro.CapDisplayName),
					func(n *hostNPC) macro.DisplayNameable { return displayOnly(n.name) })
			}),
		)
		require.NoError(t, err)

		var logs bytes.Buffer
		r := macro.NewCompositeResolver(bridged,
			macro.WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

		require.NotPanics(t, func() {
			out := r.Resolve(macro.MustKey("NPC"), objects("NPC", (*hostNPC)(nil)))
			require.Equal(t, 0, out.Len())
		})
		require.Contains(t, logs.String(), "recovered panic while resolving macro")
		require.Contains(t, logs.String(), `"capability":"host.npc"`)

		out := r.Resolve(macro.MustKey("NPC"), objects("NPC", &hostNPC{name: "Villager"}))
		got, ok := value(out, "NPC.DISPLAY_NAME")
		require.True(t, ok)
		require.Equal(t, "Villager", got)
	})

	t.Run("replacer survives panicking bridges", func(t *testing.T) {
		t.Parallel()
		bridged, err := macro.NewRegistry(
			macro.WithAdapter("host.npc", func() macro.Adapter {
				return macro.Bridge("host.npc", macro.Builtin(macro.CapDisplayName),
					func(n *hostNPC) macro.DisplayNameable { return displayOnly(n.name) })
			}),
		)
		require.NoError(t, err)

		rep := macro.NewReplacer(macro.NewDefaultResolver(bridged))
		require.NotPanics(t, func() {
			got := rep.Replace(objects("NPC", (*hostNPC)(nil)), "{NPC.DISPLAY_NAME} waves")
			require.Equal(t, "{NPC.DISPLAY_NAME} waves", got)
		})
	})

	t.Run("logs discarded blank values", func(t *testing.T) {
		t.Parallel()
		blank, err := macro.NewRegistry(
			macro.WithAdapter("blank", func() macro.Adapter {
				return macro.NewAdapter[displayOnly]("blank", func(base macro.Key, _ displayOnly, _ *macro.ExtractContext) *macro.StringMap {
					out := macro.NewStringMap()
					out.Put(base.Child("EMPTY"), macro.Text("   "))
					return out
				})
			}),
		)
		require.NoError(t, err)

		var logs bytes.Buffer
		r := macro.NewCompositeResolver(blank,
			macro.WithLogger(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

		out := r.Resolve(macro.MustKey("W"), objects("W", displayOnly("hey")))
		_, ok := out.Get(macro.MustKey("W.EMPTY"))
		require.False(t, ok)
		require.Contains(t, logs.String(), "discarded blank macro value")
		require.Contains(t, logs.String(), `"key":"W.EMPTY"`)
	})

	t.Run("bridge maps host type", func(t *testing.T) {
		t.Parallel()
		bridged, err := macro.NewRegistry(
			macro.WithAdapter("host.entity", func() macro.Adapter {
				return macro.Bridge("host.entity", macro.Builtin(macro.CapDisplayName),
					func(e hostEntity) macro.DisplayNameable { return hostLabel{e} })
			}),
		)
		require.NoError(t, err)

		out := macro.NewCompositeResolver(bridged).Resolve(macro.MustKey("MOB"), objects("MOB", hostEntity{label: "Zombie"}))
		got, ok := value(out, "MOB.DISPLAY_NAME")
		require.True(t, ok)
		require.Equal(t, "[Zombie]", got)
	})

	t.Run("custom adapter", func(t *testing.T) {
		t.Parallel()
		custom, err := macro.NewRegistry(
			macro.WithAdapter("shout", func() macro.Adapter {
				return macro.NewAdapter[displayOnly]("shout", func(base macro.Key, d displayOnly, _ *macro.ExtractContext) *macro.StringMap {
					out := macro.NewStringMap()
					out.Put(base.Child("SHOUT"), macro.Text(string(d)+"!"))
					return out
				})
			}),
		)
		require.NoError(t, err)

		out := macro.NewCompositeResolver(custom).Resolve(macro.MustKey("W"), objects("W", displayOnly("hey")))
		got, _ := value(out, "W.SHOUT")
		require.Equal(t, "hey!", got)
		got, _ = value(out, "W.DISPLAY_NAME")
		require.Equal(t, "hey", got)
	})
}

func TestFieldResolver(t *testing.T) {
	t.Parallel()

	reg, err := macro.NewRegistry()
	require.NoError(t, err)

	t.Run("earlier resolver wins on collision", func(t *testing.T) {
		t.Parallel()
		composite := macro.NewCompositeResolver(reg)
		atomic := macro.NewAtomicResolver()

		out := macro.NewFieldResolver(composite, atomic).Resolve(macro.MustKey("PET"), objects("PET", petName("rex")))
		got, _ := value(out, "PET")
		require.Equal(t, "composite:rex", got)

		out = macro.NewFieldResolver(macro.NewAtomicResolver(), macro.NewCompositeResolver(reg)).
			Resolve(macro.MustKey("PET"), objects("PET", petName("rex")))
		got, _ = value(out, "PET")
		require.Equal(t, "atomic:rex", got)

		// Keys only the later resolver produces still contribute.
		got, ok := value(out, "PET.NAME")
		require.True(t, ok)
		require.Equal(t, "composite:rex", got)
	})

	t.Run("skips nil resolvers", func(t *testing.T) {
		t.Parallel()
		f := macro.NewFieldResolver(nil, macro.NewAtomicResolver())
		out := f.Resolve(macro.MustKey("A"), objects("A", "x"))
		got, _ := value(out, "A")
		require.Equal(t, "x", got)
	})

	t.Run("resolver func", func(t *testing.T) {
		t.Parallel()
		fixed := macro.ResolverFunc(func(key macro.Key, _ macro.ObjectMap) *macro.StringMap {
			out := macro.NewStringMap()
			out.Put(key, macro.Text("fixed"))
			return out
		})
		out := macro.NewFieldResolver(fixed, macro.NewAtomicResolver()).Resolve(macro.MustKey("A"), objects("A", "x"))
		got, _ := value(out, "A")
		require.Equal(t, "fixed", got)
	})
}

func TestNestedResolution(t *testing.T) {
	t.Parallel()

	reg, err := macro.NewRegistry()
	require.NoError(t, err)
	r := macro.NewDefaultResolver(reg)

	t.Run("expands related objects", func(t *testing.T) {
		t.Parallel()
		killer := &player{name: "Herobrine", nickname: "The Shadow"}
		out := r.Resolve(macro.MustKey("VICTIM"), objects("VICTIM", &victim{name: "Steve", killer: killer}))

		got, _ := value(out, "VICTIM.KILLER")
		require.Equal(t, "Herobrine", got)
		got, _ = value(out, "VICTIM.KILLER.DISPLAY_NAME")
		require.Equal(t, "The Shadow", got)
		got, _ = value(out, "VICTIM.KILLER.NAME")
		require.Equal(t, "Herobrine", got)
	})

	t.Run("atomic related object", func(t *testing.T) {
		t.Parallel()
		out := r.Resolve(macro.MustKey("VICTIM"), objects("VICTIM", &victim{name: "Steve", killer: "Zombie"}))
		got, _ := value(out, "VICTIM.KILLER")
		require.Equal(t, "Zombie", got)
	})

	t.Run("missing related object is unresolved", func(t *testing.T) {
		t.Parallel()
		out := r.Resolve(macro.MustKey("VICTIM"), objects("VICTIM", &victim{name: "Steve"}))
		got, ok := value(out, "VICTIM.KILLER")
		require.True(t, ok)
		require.Equal(t, "<unresolved>", got)
	})

	t.Run("cycles terminate", func(t *testing.T) {
		t.Parallel()
		v := &victim{name: "Narcissus"}
		v.killer = v

		out := r.Resolve(macro.MustKey("V"), objects("V", v))
		got, _ := value(out, "V.KILLER.KILLER")
		require.Equal(t, "Narcissus", got)

		for k := range out.All() {
			require.LessOrEqual(t, k.Depth(), macro.DefaultMaxDepth)
		}
	})

	t.Run("several related objects", func(t *testing.T) {
		t.Parallel()
		chest := lootChest{looter: &player{name: "Alex"}, owner: &player{name: "Steve"}}
		out := r.Resolve(macro.MustKey("CHEST"), objects("CHEST", chest))

		got, _ := value(out, "CHEST.LOOTER")
		require.Equal(t, "Alex", got)
		got, _ = value(out, "CHEST.OWNER.NAME")
		require.Equal(t, "Steve", got)
	})
}
