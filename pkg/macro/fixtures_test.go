package macro_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/herald/pkg/macro"
)

type player struct {
	id       uuid.UUID
	loc      *macro.Location
	name     string
	nickname string
}

func (p *player) Name() string              { return p.name }
func (p *player) DisplayName() string       { return p.nickname }
func (p *player) UniqueID() uuid.UUID       { return p.id }
func (p *player) Location() *macro.Location { return p.loc }

type item struct {
	name  string
	count int
}

func (i item) DisplayName() string { return i.name }
func (i item) Quantity() int       { return i.count }

type displayOnly string

func (d displayOnly) DisplayName() string { return string(d) }

type victim struct {
	killer any
	name   string
}

func (v *victim) Name() string { return v.name }
func (v *victim) Killer() any  { return v.killer }

type lootChest struct {
	expires time.Time
	looter  any
	owner   any
}

func (c lootChest) Looter() any           { return c.looter }
func (c lootChest) Owner() any            { return c.owner }
func (c lootChest) Expiration() time.Time { return c.expires }

// petName is both a Nameable and a fmt.Stringer, so the composite and the
// atomic resolver both produce the bare key.
type petName string

func (p petName) Name() string   { return "composite:" + string(p) }
func (p petName) String() string { return "atomic:" + string(p) }

type panicky struct{}

func (panicky) DisplayName() string { panic("boom") }

// hostEntity is a foreign type that implements no capability itself.
type hostEntity struct {
	label string
}

// hostNPC is read through its pointer, so a nil *hostNPC panics in a bridge.
type hostNPC struct{ name string }

type hostLabel struct{ e hostEntity }

func (h hostLabel) DisplayName() string { return "[" + h.e.label + "]" }

func objects(pairs ...any) macro.ObjectMap {
	m := macro.NewObjectMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Put(macro.MustKey(pairs[i].(string)), pairs[i+1])
	}
	return m
}

func newReplacer(opts ...macro.ResolverOption) *macro.Replacer {
	reg, err := macro.NewRegistry()
	if err != nil {
		panic(err)
	}
	return macro.NewReplacer(macro.NewDefaultResolver(reg, opts...))
}

func value(m *macro.StringMap, key string) (string, bool) {
	v, ok := m.Get(macro.MustKey(key))
	return v.Or("<unresolved>"), ok
}
