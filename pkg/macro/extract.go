package macro

import (
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

func textOr(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unresolved
	}
	return Text(s)
}

func extractName(base Key, n Nameable, _ *ExtractContext) *StringMap {
	out := NewStringMap()
	v := textOr(n.Name())
	out.Put(base, v)
	out.Put(base.Child(SuffixName), v)
	return out
}

func extractDisplayName(base Key, n DisplayNameable, _ *ExtractContext) *StringMap {
	out := NewStringMap()
	out.Put(base.Child(SuffixDisplayName), textOr(n.DisplayName()))
	return out
}

func extractQuantity(base Key, q Quantifiable, ec *ExtractContext) *StringMap {
	out := NewStringMap()
	v := Unresolved
	if n := q.Quantity(); n >= 0 {
		v = Text(ec.Formatter().FormatNumber(float64(n)))
	}
	out.Put(base.Child(SuffixQuantity), v)
	return out
}

// extractLocation derives the combined location string plus one key per
// component. Each component is defaulted on its own.
func extractLocation(base Key, l Locatable, ec *ExtractContext) *StringMap {
	out := NewStringMap()
	key := base.Child(SuffixLocation)

	loc := l.Location()
	if loc == nil {
		out.Put(key, Unresolved)
		for _, s := range []string{SuffixWorld, SuffixX, SuffixY, SuffixZ} {
			out.Put(key.Child(s), Unresolved)
		}
		return out
	}

	world := textOr(loc.World)
	x, y, z := coordinate(loc.X, ec), coordinate(loc.Y, ec), coordinate(loc.Z, ec)

	unknown := ec.Unknown()
	combined := world.Or(unknown) + " [" + x.Or(unknown) + ", " + y.Or(unknown) + ", " + z.Or(unknown) + "]"

	out.Put(key, Text(combined))
	out.Put(key.Child(SuffixWorld), world)
	out.Put(key.Child(SuffixX), x)
	out.Put(key.Child(SuffixY), y)
	out.Put(key.Child(SuffixZ), z)
	return out
}

// coordinate formats a block coordinate.
func coordinate(f float64, ec *ExtractContext) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Unresolved
	}
	return Text(ec.Formatter().FormatNumber(math.Floor(f)))
}

func extractIdentity(base Key, i Identifiable, _ *ExtractContext) *StringMap {
	out := NewStringMap()
	v := Unresolved
	if id := i.UniqueID(); id != uuid.Nil {
		v = Text(id.String())
	}
	out.Put(base.Child(SuffixUUID), v)
	return out
}

func extractDuration(base Key, d Durationable, ec *ExtractContext) *StringMap {
	out := NewStringMap()
	out.Put(base.Child(SuffixDuration), formatDuration(d.Duration(), ec))
	return out
}

func extractInstant(base Key, i Instantable, ec *ExtractContext) *StringMap {
	out := NewStringMap()
	out.Put(base.Child(SuffixInstant), formatInstant(i.Instant(), ec))
	return out
}

func extractExpiration(base Key, e Expirable, ec *ExtractContext) *StringMap {
	return deadline(base.Child(SuffixExpiration), e.Expiration(), ec)
}

func extractProtection(base Key, p Protectable, ec *ExtractContext) *StringMap {
	return deadline(base.Child(SuffixProtection), p.Protection(), ec)
}

// deadline derives KEY.DURATION (time left) and KEY.INSTANT for an instant in
// the future. Past instants keep the INSTANT but leave the DURATION unresolved.
func deadline(key Key, at time.Time, ec *ExtractContext) *StringMap {
	out := NewStringMap()
	remaining := Unresolved
	if !at.IsZero() {
		remaining = formatDuration(at.Sub(ec.Now()), ec)
	}
	out.Put(key.Child(SuffixDuration), remaining)
	out.Put(key.Child(SuffixInstant), formatInstant(at, ec))
	return out
}

func extractKiller(base Key, k Killable, ec *ExtractContext) *StringMap {
	return nested(base.Child(SuffixKiller), k.Killer(), ec)
}

func extractLooter(base Key, l Lootable, ec *ExtractContext) *StringMap {
	return nested(base.Child(SuffixLooter), l.Looter(), ec)
}

func extractOwner(base Key, o Ownable, ec *ExtractContext) *StringMap {
	return nested(base.Child(SuffixOwner), o.Owner(), ec)
}

// nested resolves a related object under key through the resolver chain.
// The bare key takes the related object's own bare value when there is one.
func nested(key Key, related any, ec *ExtractContext) *StringMap {
	out := NewStringMap()
	if related == nil {
		out.Put(key, Unresolved)
		return out
	}

	sub := ec.Resolve(key, related)
	bare, ok := sub.Get(key)
	if !ok {
		bare = Unresolved
	}
	out.Put(key, bare)
	out.Merge(sub)
	return out
}

func extractURL(base Key, u URLAddressable, _ *ExtractContext) *StringMap {
	out := NewStringMap()
	v := Unresolved
	if parsed, err := url.Parse(strings.TrimSpace(u.URL())); err == nil && parsed.IsAbs() {
		v = Text(parsed.String())
	}
	out.Put(base.Child(SuffixURL), v)
	return out
}

func formatDuration(d time.Duration, ec *ExtractContext) Value {
	if d < 0 {
		return Unresolved
	}
	return textOr(ec.Formatter().FormatDuration(d))
}

func formatInstant(t time.Time, ec *ExtractContext) Value {
	if t.IsZero() {
		return Unresolved
	}
	return textOr(ec.Formatter().FormatDateTime(t))
}
