package message

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/herald/pkg/cooldown"
	"github.com/dmitrymomot/herald/pkg/logger"
	"github.com/dmitrymomot/herald/pkg/macro"
)

// RecipientKey is the object key under which the pipeline exposes the
// recipient to templates, e.g. {RECIPIENT.DISPLAY_NAME}.
var RecipientKey = macro.MustKey("RECIPIENT")

// Outcome reports what Send did with a message.
type Outcome int

const (
	// OutcomeSent means the message was handed to every sender and its
	// cooldown was recorded.
	OutcomeSent Outcome = iota
	// OutcomeDisabled means the record is disabled, missing or invalid.
	OutcomeDisabled
	// OutcomeCooling means the recipient received the message too recently.
	OutcomeCooling
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeCooling:
		return "cooling"
	default:
		return "unknown"
	}
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline) error

// WithSenders appends senders. They run in the order given.
func WithSenders(senders ...Sender) PipelineOption {
	return func(p *Pipeline) error {
		for _, s := range senders {
			if s == nil {
				return ErrNilSender
			}
			p.senders = append(p.senders, s)
		}
		return nil
	}
}

// WithCooldowns sets the cooldown map. Without one, messages never cool.
func WithCooldowns(m *cooldown.Map) PipelineOption {
	return func(p *Pipeline) error {
		p.cooldowns = m
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) error {
		if l != nil {
			p.logger = l
		}
		return nil
	}
}

// Pipeline retrieves, gates, renders and delivers messages.
// It is immutable after construction and safe for concurrent use when its
// repository, senders and cooldown store are.
type Pipeline struct {
	repo      Repository
	processor *Processor
	cooldowns *cooldown.Map
	logger    *slog.Logger
	senders   []Sender
}

// NewPipeline creates a Pipeline over repo.
func NewPipeline(repo Repository, processor *Processor, opts ...PipelineOption) (*Pipeline, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	if processor == nil {
		return nil, ErrNilProcessor
	}

	p := &Pipeline{
		repo:      repo,
		processor: processor,
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("failed to apply pipeline option: %w", err)
		}
	}
	return p, nil
}

// Send delivers the message key to recipient:
//
//  1. the record is looked up; a missing or invalid record counts as disabled
//  2. a disabled record stops here
//  3. a recipient still cooling for key stops here
//  4. body, title and subtitle are substituted from objects
//  5. every sender runs in order; a failing sender is logged and the rest
//     still run
//  6. the cooldown window starts
//
// The window starts once delivery was attempted, whether or not senders
// succeeded. objects is not modified.
func (p *Pipeline) Send(ctx context.Context, recipient any, key RecordKey, objects macro.ObjectMap) Outcome {
	ctx = logger.ContextWithAttrs(ctx, slog.String("message", key.String()))

	rec, err := p.repo.Record(key)
	if err != nil {
		p.logger.DebugContext(ctx, "message unavailable", slog.Any("reason", err))
		rec = Disabled(key)
	}
	if !rec.Enabled {
		return OutcomeDisabled
	}

	ck := cooldown.NewKey(recipient, key.String())
	ctx = logger.ContextWithAttrs(ctx, slog.String("recipient", ck.Recipient.String()))

	if p.cooldowns != nil && !p.cooldowns.NotCooling(ctx, ck) {
		return OutcomeCooling
	}

	final := p.processor.Process(p.objects(recipient, objects), rec)

	for _, s := range p.senders {
		if err := s.Send(ctx, recipient, final); err != nil {
			p.logger.WarnContext(ctx, "sender failed", slog.Any("error", err))
		}
	}

	if p.cooldowns != nil {
		if err := p.cooldowns.PutExpirationTime(ctx, ck, rec.RepeatDelay); err != nil {
			p.logger.WarnContext(ctx, "failed to record cooldown", slog.Any("error", err))
		}
	}

	return OutcomeSent
}

// objects returns the render scope: caller objects first, then the
// recipient, then repository constants. Earlier entries win.
func (p *Pipeline) objects(recipient any, objects macro.ObjectMap) macro.ObjectMap {
	scope := make(macro.ObjectMap, len(objects)+1)
	maps.Copy(scope, objects)
	scope.PutIfAbsent(RecipientKey, recipient)

	if cp, ok := p.repo.(ConstantProvider); ok {
		for k, v := range cp.Constants() {
			scope.PutIfAbsent(k, v)
		}
	}
	return scope
}

// Compose starts a message to recipient built with chained Set calls.
func (p *Pipeline) Compose(recipient any, key RecordKey) *Message {
	return &Message{pipeline: p, recipient: recipient, key: key, objects: macro.NewObjectMap()}
}
