package cooldown

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/herald/pkg/macro"
)

// ConsoleIdentity is the identity shared by every recipient that has no
// stable identity of its own, such as the server console. All of them throttle
// through one bucket per message.
var ConsoleIdentity = uuid.Nil

// Key identifies one cooldown bucket: a recipient and a message.
// It is comparable and usable as a map key.
type Key struct {
	Recipient uuid.UUID
	Message   string
}

// NewKey builds the key for delivering message to recipient.
// Recipients are identified through macro.Identifiable or by being a
// uuid.UUID themselves; anything else, including an Identifiable whose
// UniqueID panics, maps to ConsoleIdentity.
func NewKey(recipient any, message string) Key {
	return Key{Recipient: identityOf(recipient), Message: message}
}

func identityOf(recipient any) (id uuid.UUID) {
	defer func() {
		if recover() != nil {
			id = ConsoleIdentity
		}
	}()

	switch r := recipient.(type) {
	case uuid.UUID:
		return r
	case macro.Identifiable:
		return r.UniqueID()
	default:
		return ConsoleIdentity
	}
}

// IsConsole reports whether the key belongs to the shared console bucket.
func (k Key) IsConsole() bool {
	return k.Recipient == ConsoleIdentity
}

// String returns "recipient:message".
func (k Key) String() string {
	return k.Recipient.String() + ":" + k.Message
}
