package macro

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ValueResolver turns the object stored under key into formatted values.
// Resolution never fails: an unmatched key yields an empty map.
type ValueResolver interface {
	Resolve(key Key, objects ObjectMap) *StringMap
}

// ResolverFunc adapts a function to ValueResolver.
type ResolverFunc func(key Key, objects ObjectMap) *StringMap

// Resolve calls f.
func (f ResolverFunc) Resolve(key Key, objects ObjectMap) *StringMap {
	return f(key, objects)
}

// chainBinder is implemented by resolvers that recurse through the chain
// they are composed into.
type chainBinder interface {
	bindChain(chain ValueResolver)
}

// AtomicResolver formats values that need no key derivation: strings,
// booleans, numbers, durations, instants, UUIDs and fmt.Stringer values
// placed directly in the object map. The result holds only the bare key.
type AtomicResolver struct {
	cfg resolverConfig
}

// NewAtomicResolver creates an AtomicResolver.
func NewAtomicResolver(opts ...ResolverOption) *AtomicResolver {
	return &AtomicResolver{cfg: newResolverConfig(opts...)}
}

// Resolve implements ValueResolver.
func (r *AtomicResolver) Resolve(key Key, objects ObjectMap) *StringMap {
	out := NewStringMap()

	v, ok := objects.Get(key)
	if !ok {
		return out
	}

	value, ok := r.format(key, v)
	if !ok {
		return out
	}
	if !out.Put(key, value) {
		r.cfg.logger.Debug("discarded blank macro value", slog.String("key", key.String()))
	}
	return out
}

func (r *AtomicResolver) format(key Key, v any) (value Value, ok bool) {
	f := r.cfg.formatter

	switch t := v.(type) {
	case Value:
		return t, true
	case string:
		return Text(t), true
	case bool:
		return Text(strconv.FormatBool(t)), true
	case time.Duration:
		if t < 0 {
			return Unresolved, true
		}
		return Text(f.FormatDuration(t)), true
	case time.Time:
		if t.IsZero() {
			return Unresolved, true
		}
		return Text(f.FormatDateTime(t)), true
	case uuid.UUID:
		if t == uuid.Nil {
			return Unresolved, true
		}
		return Text(t.String()), true
	case int:
		return Text(f.FormatNumber(float64(t))), true
	case int8:
		return Text(f.FormatNumber(float64(t))), true
	case int16:
		return Text(f.FormatNumber(float64(t))), true
	case int32:
		return Text(f.FormatNumber(float64(t))), true
	case int64:
		return Text(f.FormatNumber(float64(t))), true
	case uint:
		return Text(f.FormatNumber(float64(t))), true
	case uint8:
		return Text(f.FormatNumber(float64(t))), true
	case uint16:
		return Text(f.FormatNumber(float64(t))), true
	case uint32:
		return Text(f.FormatNumber(float64(t))), true
	case uint64:
		return Text(f.FormatNumber(float64(t))), true
	case float32:
		return number(f, float64(t)), true
	case float64:
		return number(f, t), true
	case fmt.Stringer:
		defer recoverInto(r.cfg.logger, key, "stringer", &value, &ok)
		return Text(t.String()), true
	default:
		return Value{}, false
	}
}

func number(f Formatter, n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Unresolved
	}
	return Text(f.FormatNumber(n))
}

// recoverInto turns a panic from host code into "no value".
func recoverInto(logger *slog.Logger, key Key, source string, value *Value, ok *bool) {
	if rec := recover(); rec != nil {
		logger.Warn("recovered panic while resolving macro",
			slog.String("key", key.String()),
			slog.String("source", source),
			slog.Any("panic", rec),
		)
		*value = Value{}
		*ok = false
	}
}

// CompositeResolver expands objects through every matching adapter of a
// Registry. When the object under key satisfies several capabilities, each
// contributes its keys; the first writer of a key wins.
type CompositeResolver struct {
	registry *Registry
	chain    ValueResolver
	cfg      resolverConfig
}

// NewCompositeResolver creates a CompositeResolver over registry.
// Nested objects recurse through the FieldResolver the composite is placed
// in, or through the composite itself when it is used on its own.
func NewCompositeResolver(registry *Registry, opts ...ResolverOption) *CompositeResolver {
	if registry == nil {
		panic(ErrNilResolver)
	}
	return &CompositeResolver{registry: registry, cfg: newResolverConfig(opts...)}
}

func (r *CompositeResolver) bindChain(chain ValueResolver) {
	if r.chain == nil {
		r.chain = chain
	}
}

// Resolve implements ValueResolver.
func (r *CompositeResolver) Resolve(key Key, objects ObjectMap) *StringMap {
	out := NewStringMap()

	v, ok := objects.Get(key)
	if !ok || v == nil {
		return out
	}

	chain := r.chain
	if chain == nil {
		chain = r
	}
	ec := &ExtractContext{cfg: &r.cfg, chain: chain}

	for _, capability := range r.registry.order {
		a, ok := r.registry.Adapter(capability)
		if !ok {
			continue
		}
		out.Merge(r.extract(a, key, v, ec))
	}
	return out
}

// extract adapts v and derives its keys. Panics from Adapt or Extract are
// logged and yield nothing.
func (r *CompositeResolver) extract(a Adapter, key Key, v any, ec *ExtractContext) (result *StringMap) {
	defer func() {
		if rec := recover(); rec != nil {
			r.cfg.logger.Warn("recovered panic while resolving macro",
				slog.String("key", key.String()),
				slog.String("capability", string(a.Capability())),
				slog.Any("panic", rec),
			)
			result = nil
		}
	}()

	e, ok := a.Adapt(v)
	if !ok || e == nil {
		return nil
	}
	result = e.Extract(key, ec)
	for _, k := range result.discarded() {
		r.cfg.logger.Debug("discarded blank macro value",
			slog.String("key", k.String()),
			slog.String("capability", string(a.Capability())),
		)
	}
	return result
}

// FieldResolver runs resolvers in order and merges their results.
// A key produced by an earlier resolver is never overridden by a later one.
type FieldResolver struct {
	resolvers []ValueResolver
}

// NewFieldResolver composes resolvers. Composite resolvers among them recurse
// through the returned FieldResolver for nested objects.
func NewFieldResolver(resolvers ...ValueResolver) *FieldResolver {
	f := &FieldResolver{resolvers: make([]ValueResolver, 0, len(resolvers))}
	for _, r := range resolvers {
		if r == nil {
			continue
		}
		if b, ok := r.(chainBinder); ok {
			b.bindChain(f)
		}
		f.resolvers = append(f.resolvers, r)
	}
	return f
}

// NewDefaultResolver returns the conventional chain: composite, then atomic.
func NewDefaultResolver(registry *Registry, opts ...ResolverOption) *FieldResolver {
	return NewFieldResolver(
		NewCompositeResolver(registry, opts...),
		NewAtomicResolver(opts...),
	)
}

// Resolve implements ValueResolver.
func (f *FieldResolver) Resolve(key Key, objects ObjectMap) *StringMap {
	out := NewStringMap()
	for _, r := range f.resolvers {
		out.Merge(r.Resolve(key, objects))
	}
	return out
}
