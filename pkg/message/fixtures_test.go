package message_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/herald/pkg/cooldown"
	"github.com/dmitrymomot/herald/pkg/macro"
	"github.com/dmitrymomot/herald/pkg/message"
)

// player receives chat and titles.
type player struct {
	id     uuid.UUID
	name   string
	fail   error
	mu     sync.Mutex
	chat   []string
	titles []message.Title
}

func newPlayer(name string) *player {
	return &player{id: uuid.New(), name: name}
}

func (p *player) DisplayName() string { return p.name }
func (p *player) UniqueID() uuid.UUID { return p.id }

func (p *player) SendMessage(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.chat = append(p.chat, text)
	return nil
}

func (p *player) ShowTitle(t message.Title) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titles = append(p.titles, t)
	return nil
}

func (p *player) Chat() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.chat...)
}

var errOffline = errors.New("player offline")

type clock struct {
	now time.Time
	mu  sync.Mutex
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newProcessor() *message.Processor {
	reg, err := macro.NewRegistry()
	if err != nil {
		panic(err)
	}
	return message.NewProcessor(macro.NewReplacer(macro.NewDefaultResolver(reg)))
}

type harness struct {
	clock    *clock
	pipeline *message.Pipeline
}

func newHarness(t *testing.T, repo message.Repository, opts ...message.PipelineOption) *harness {
	t.Helper()

	c := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cooldowns, err := cooldown.New(cooldown.WithClock(c.Now))
	require.NoError(t, err)

	opts = append([]message.PipelineOption{
		message.WithSenders(message.ChatSender{}, message.TitleSender{}),
		message.WithCooldowns(cooldowns),
	}, opts...)

	p, err := message.NewPipeline(repo, newProcessor(), opts...)
	require.NoError(t, err)

	return &harness{clock: c, pipeline: p}
}

func repository(t *testing.T, opts ...message.RepositoryOption) *message.MapRepository {
	t.Helper()
	repo, err := message.NewMapRepository(opts...)
	require.NoError(t, err)
	return repo
}

func objects(pairs ...any) macro.ObjectMap {
	m := macro.NewObjectMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Put(macro.MustKey(pairs[i].(string)), pairs[i+1])
	}
	return m
}
