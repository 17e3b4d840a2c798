package herald

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/herald/pkg/cooldown"
	"github.com/dmitrymomot/herald/pkg/locale"
	"github.com/dmitrymomot/herald/pkg/logger"
	"github.com/dmitrymomot/herald/pkg/macro"
	"github.com/dmitrymomot/herald/pkg/message"
)

// ErrAlreadyStarted is returned by Start on a running engine.
var ErrAlreadyStarted = errors.New("herald: engine already started")

// Engine renders and delivers messages. It owns the adapter registry, the
// resolver chain, the replacer, the cooldown map and its sweeper.
// Engine is immutable after creation and safe for concurrent use.
type Engine struct {
	logger    *slog.Logger
	registry  *macro.Registry
	replacer  *macro.Replacer
	cooldowns *cooldown.Map
	sweeper   *cooldown.Sweeper
	pipeline  *message.Pipeline
	hooks     []func(ctx context.Context) error

	shutdownTimeout time.Duration

	mu      sync.Mutex
	started bool
}

// New creates an engine delivering messages from repo.
//
// Example:
//
//	catalog, err := message.LoadCatalog(os.DirFS("messages"), "en")
//	e, err := herald.New(catalog,
//	    herald.WithLogger(log),
//	    herald.WithFormatter(locale.Predefined(language.German)),
//	    herald.WithAdapter(macro.CapDisplayName, playerNames),
//	)
func New(repo message.Repository, opts ...Option) (*Engine, error) {
	c := &config{
		logger:          logger.NewNope(),
		now:             time.Now,
		shutdownTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.formatter == nil {
		c.formatter = locale.Default()
	}
	if c.store == nil {
		c.store = cooldown.NewMemoryStore()
	}
	if len(c.senders) == 0 {
		c.senders = []message.Sender{message.ChatSender{}, message.TitleSender{}}
	}

	registry, err := macro.NewRegistry(c.adapters...)
	if err != nil {
		return nil, fmt.Errorf("herald: %w", err)
	}

	resolverOpts := []macro.ResolverOption{
		macro.WithFormatter(c.formatter),
		macro.WithClock(c.now),
		macro.WithLogger(c.logger),
		macro.WithUnknownText(c.unknown),
	}
	if c.maxDepth > 0 {
		resolverOpts = append(resolverOpts, macro.WithMaxDepth(c.maxDepth))
	}

	chain := append([]macro.ValueResolver{}, c.resolvers...)
	chain = append(chain,
		macro.NewCompositeResolver(registry, resolverOpts...),
		macro.NewAtomicResolver(resolverOpts...),
	)

	replacer := macro.NewReplacer(macro.NewFieldResolver(chain...),
		macro.WithMatcher(macro.NewMatcher(macro.WithDelimiters(c.left, c.right))),
		macro.WithUnresolvedText(c.unknown),
	)

	cooldowns, err := cooldown.New(
		cooldown.WithStore(c.store),
		cooldown.WithClock(c.now),
		cooldown.WithLogger(c.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("herald: %w", err)
	}

	pipeline, err := message.NewPipeline(repo, message.NewProcessor(replacer),
		message.WithSenders(c.senders...),
		message.WithCooldowns(cooldowns),
		message.WithLogger(c.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("herald: %w", err)
	}

	e := &Engine{
		logger:          c.logger,
		registry:        registry,
		replacer:        replacer,
		cooldowns:       cooldowns,
		pipeline:        pipeline,
		hooks:           c.shutdownHooks,
		shutdownTimeout: c.shutdownTimeout,
	}

	if !c.sweeperDisabled {
		e.sweeper, err = cooldown.NewSweeper(cooldowns,
			cooldown.WithSchedule(c.sweepSchedule),
			cooldown.WithSweepLogger(c.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("herald: %w", err)
		}
	}

	return e, nil
}

// Send delivers the message key to recipient. See message.Pipeline.Send.
func (e *Engine) Send(ctx context.Context, recipient any, key message.RecordKey, objects macro.ObjectMap) message.Outcome {
	return e.pipeline.Send(ctx, recipient, key, objects)
}

// Compose starts a message to recipient built with chained Set calls.
func (e *Engine) Compose(recipient any, key message.RecordKey) *message.Message {
	return e.pipeline.Compose(recipient, key)
}

// Replace substitutes placeholders in template without the message
// pipeline: no repository, no cooldown, no senders.
func (e *Engine) Replace(objects macro.ObjectMap, template string) string {
	return e.replacer.Replace(objects, template)
}

// Registry returns the adapter registry.
func (e *Engine) Registry() *macro.Registry {
	return e.registry
}

// Cooldowns returns the cooldown map, e.g. to reset a window.
func (e *Engine) Cooldowns() *cooldown.Map {
	return e.cooldowns
}
