// Package macro expands dotted-path placeholders such as {PLAYER.LOCATION.X}
// in message templates using a map of named context objects.
//
// Rendering is a small pipeline: a Matcher finds placeholder keys, a
// ValueResolver turns the context objects behind those keys into formatted
// values, and a Replacer substitutes the values back into the template.
// Nothing in the render path returns an error. Unknown keys, objects without
// a matching adapter and invalid values leave the placeholder text in place,
// so a broken macro is visible in the output instead of silently vanishing.
//
// # Keys
//
// Keys follow the grammar ^[A-Z][A-Z0-9_]*(\.[A-Z][A-Z0-9_]*)*$ and are only
// created through NewKey, which rejects anything else:
//
//	key, err := macro.NewKey("PLAYER.LOCATION")
//	if err != nil {
//		// errors.Is(err, macro.ErrInvalidKey)
//	}
//
// # Capabilities
//
// Context objects opt into expansion by implementing small accessor
// interfaces (Nameable, DisplayNameable, Quantifiable, Locatable, ...). Each
// capability derives its own sub-keys beneath the placeholder's base key:
//
//	type Item struct{ name string; count int }
//
//	func (i Item) DisplayName() string { return i.name }
//	func (i Item) Quantity() int        { return i.count }
//
//	objects := macro.ObjectMap{}
//	objects.Put(macro.MustKey("ITEM"), Item{"Stick", 5})
//	r.Replace(objects, "{ITEM.QUANTITY}x {ITEM.DISPLAY_NAME}") // "5x Stick"
//
// Every key a capability can derive is always produced. Values that cannot
// be formatted are stored as Unresolved and rendered as the unknown text
// (DefaultUnknownText).
//
// # Adapters and the Registry
//
// A Registry holds one Adapter per capability. Built-in adapters are
// registered first, then the ones passed to NewRegistry. Host types that do
// not implement the interfaces directly are mapped with Bridge, which names
// the host type explicitly instead of relying on reflection.
//
// # Resolvers
//
// CompositeResolver runs all matching adapters, AtomicResolver formats plain
// values (strings, numbers, durations, times), and FieldResolver chains
// resolvers with first-writer-wins merging. Related objects such as a
// killer or an owner are resolved recursively through the same chain, so one
// root placeholder expands into an arbitrarily deep key tree.
//
// # Thread Safety
//
// Registry, resolvers, Matcher and Replacer are immutable after construction
// and safe for concurrent use. ObjectMap and StringMap belong to a single
// render and are not synchronized.
package macro
