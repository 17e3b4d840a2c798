package message

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/herald/pkg/macro"
)

// Message collects the objects for one delivery:
//
//	p.Compose(victim, message.MustRecordKey("PLAYER.DEATH")).
//		Set("VICTIM", victim).
//		Set("WEAPON", item).
//		Send(ctx)
//
// A Message is not safe for concurrent use.
type Message struct {
	pipeline  *Pipeline
	recipient any
	objects   macro.ObjectMap
	key       RecordKey
}

// Set stores v under name. Names that are not valid macro keys are logged
// and dropped; the message is still sent.
func (m *Message) Set(name string, v any) *Message {
	k, err := macro.NewKey(name)
	if err != nil {
		m.pipeline.logger.Debug("dropped message object",
			slog.String("message", m.key.String()),
			slog.Any("error", err),
		)
		return m
	}
	m.objects.Put(k, v)
	return m
}

// SetKey stores v under an already validated key.
func (m *Message) SetKey(k macro.Key, v any) *Message {
	m.objects.Put(k, v)
	return m
}

// Objects returns the objects collected so far.
func (m *Message) Objects() macro.ObjectMap {
	return m.objects
}

// Send delivers the message through the pipeline.
func (m *Message) Send(ctx context.Context) Outcome {
	return m.pipeline.Send(ctx, m.recipient, m.key, m.objects)
}
