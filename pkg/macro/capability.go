package macro

import (
	"time"

	"github.com/google/uuid"
)

// Capability names a single-method contract a context object may satisfy.
// Registry entries are keyed by capability.
type Capability string

// Built-in capabilities, in registration order.
const (
	CapName        Capability = "name"
	CapDisplayName Capability = "display_name"
	CapQuantity    Capability = "quantity"
	CapLocation    Capability = "location"
	CapIdentity    Capability = "identity"
	CapDuration    Capability = "duration"
	CapInstant     Capability = "instant"
	CapExpiration  Capability = "expiration"
	CapProtection  Capability = "protection"
	CapKiller      Capability = "killer"
	CapLooter      Capability = "looter"
	CapOwner       Capability = "owner"
	CapURL         Capability = "url"
)

// Key suffixes appended to the base key by the built-in extractions.
const (
	SuffixName        = "NAME"
	SuffixDisplayName = "DISPLAY_NAME"
	SuffixQuantity    = "QUANTITY"
	SuffixLocation    = "LOCATION"
	SuffixWorld       = "WORLD"
	SuffixX           = "X"
	SuffixY           = "Y"
	SuffixZ           = "Z"
	SuffixUUID        = "UUID"
	SuffixDuration    = "DURATION"
	SuffixInstant     = "INSTANT"
	SuffixExpiration  = "EXPIRATION"
	SuffixProtection  = "PROTECTION"
	SuffixKiller      = "KILLER"
	SuffixLooter      = "LOOTER"
	SuffixOwner       = "OWNER"
	SuffixURL         = "URL"
)

// Nameable objects have a plain name. The name is also the value of the bare key.
type Nameable interface {
	Name() string
}

// DisplayNameable objects have a decorated, player-facing name.
type DisplayNameable interface {
	DisplayName() string
}

// Quantifiable objects carry a count, such as an item stack size.
type Quantifiable interface {
	Quantity() int
}

// Locatable objects have a position in a world.
type Locatable interface {
	Location() *Location
}

// Identifiable objects have a stable unique identity.
type Identifiable interface {
	UniqueID() uuid.UUID
}

// Durationable objects carry a length of time.
type Durationable interface {
	Duration() time.Duration
}

// Instantable objects carry a point in time.
type Instantable interface {
	Instant() time.Time
}

// Expirable objects expire at an instant.
type Expirable interface {
	Expiration() time.Time
}

// Protectable objects are protected until an instant.
type Protectable interface {
	Protection() time.Time
}

// Killable objects were killed by another object.
type Killable interface {
	Killer() any
}

// Lootable objects were looted by another object.
type Lootable interface {
	Looter() any
}

// Ownable objects belong to another object.
type Ownable interface {
	Owner() any
}

// URLAddressable objects point at a web address.
type URLAddressable interface {
	URL() string
}

// Location is a position in a named world.
type Location struct {
	World string
	X     float64
	Y     float64
	Z     float64
}
