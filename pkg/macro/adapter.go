package macro

// Extractor is an object adapted to one capability. It derives the keys
// beneath base.
type Extractor interface {
	Extract(base Key, ec *ExtractContext) *StringMap
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(base Key, ec *ExtractContext) *StringMap

// Extract calls f.
func (f ExtractorFunc) Extract(base Key, ec *ExtractContext) *StringMap {
	return f(base, ec)
}

// Adapter tests an arbitrary object against one capability and wraps it.
type Adapter interface {
	Capability() Capability
	Adapt(v any) (Extractor, bool)
}

// ExtractFunc derives keys from an object that satisfies C.
type ExtractFunc[C any] func(base Key, c C, ec *ExtractContext) *StringMap

// Factory creates an adapter. Registries call it at most once.
type Factory func() Adapter

type adapter[C any] struct {
	extract    ExtractFunc[C]
	capability Capability
}

// NewAdapter returns an adapter for objects that implement C directly.
//
// Example:
//
//	type Levelled interface{ Level() int }
//
//	levels := macro.NewAdapter(macro.Capability("level"),
//	    func(base macro.Key, l Levelled, ec *macro.ExtractContext) *macro.StringMap {
//	        out := macro.NewStringMap()
//	        out.Put(base.Child("LEVEL"), macro.Text(ec.Formatter().FormatNumber(float64(l.Level()))))
//	        return out
//	    })
func NewAdapter[C any](capability Capability, extract ExtractFunc[C]) Adapter {
	return &adapter[C]{capability: capability, extract: extract}
}

func (a *adapter[C]) Capability() Capability {
	return a.capability
}

func (a *adapter[C]) Adapt(v any) (Extractor, bool) {
	if v == nil || a.extract == nil {
		return nil, false
	}
	c, ok := v.(C)
	if !ok {
		return nil, false
	}
	return ExtractorFunc(func(base Key, ec *ExtractContext) *StringMap {
		return a.extract(base, c, ec)
	}), true
}

type bridge[T, C any] struct {
	target     Adapter
	via        func(T) C
	capability Capability
}

// Bridge maps a host type T onto the capability handled by target.
// The host type is the bridge's explicit source tag: values whose dynamic
// type is not T are rejected without inspecting them further.
//
// Example:
//
//	macro.WithAdapter("host.player.display_name", func() macro.Adapter {
//	    return macro.Bridge(macro.CapDisplayName, macro.Builtin(macro.CapDisplayName),
//	        func(p *game.Player) macro.DisplayNameable { return playerName{p} })
//	})
func Bridge[T, C any](capability Capability, target Adapter, via func(T) C) Adapter {
	return &bridge[T, C]{capability: capability, target: target, via: via}
}

func (b *bridge[T, C]) Capability() Capability {
	return b.capability
}

func (b *bridge[T, C]) Adapt(v any) (Extractor, bool) {
	if v == nil || b.target == nil || b.via == nil {
		return nil, false
	}
	t, ok := v.(T)
	if !ok {
		return nil, false
	}
	c := b.via(t)
	if any(c) == nil {
		return nil, false
	}
	return b.target.Adapt(c)
}

// Builtin returns a fresh instance of a built-in adapter, or nil when the capability is
// not built in.
func Builtin(capability Capability) Adapter {
	for _, b := range builtins {
		if b.capability == capability {
			return b.factory()
		}
	}
	return nil
}

type registration struct {
	factory    Factory
	capability Capability
}

var builtins = []registration{
	{capability: CapName, factory: func() Adapter { return NewAdapter[Nameable](CapName, extractName) }},
	{capability: CapDisplayName, factory: func() Adapter { return NewAdapter[DisplayNameable](CapDisplayName, extractDisplayName) }},
	{capability: CapQuantity, factory: func() Adapter { return NewAdapter[Quantifiable](CapQuantity, extractQuantity) }},
	{capability: CapLocation, factory: func() Adapter { return NewAdapter[Locatable](CapLocation, extractLocation) }},
	{capability: CapIdentity, factory: func() Adapter { return NewAdapter[Identifiable](CapIdentity, extractIdentity) }},
	{capability: CapDuration, factory: func() Adapter { return NewAdapter[Durationable](CapDuration, extractDuration) }},
	{capability: CapInstant, factory: func() Adapter { return NewAdapter[Instantable](CapInstant, extractInstant) }},
	{capability: CapExpiration, factory: func() Adapter { return NewAdapter[Expirable](CapExpiration, extractExpiration) }},
	{capability: CapProtection, factory: func() Adapter { return NewAdapter[Protectable](CapProtection, extractProtection) }},
	{capability: CapKiller, factory: func() Adapter { return NewAdapter[Killable](CapKiller, extractKiller) }},
	{capability: CapLooter, factory: func() Adapter { return NewAdapter[Lootable](CapLooter, extractLooter) }},
	{capability: CapOwner, factory: func() Adapter { return NewAdapter[Ownable](CapOwner, extractOwner) }},
	{capability: CapURL, factory: func() Adapter { return NewAdapter[URLAddressable](CapURL, extractURL) }},
}
