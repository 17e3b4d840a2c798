package cooldown

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/herald/pkg/logger"
)

// DefaultSweepSchedule runs a sweep every minute.
const DefaultSweepSchedule = "@every 1m"

// Sweeper periodically removes expired entries from a Map.
type Sweeper struct {
	m        *Map
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
	timeout  time.Duration
}

// SweeperOption configures a Sweeper.
type SweeperOption func(*Sweeper)

// WithSchedule sets the sweep schedule: a five-field cron expression or a
// descriptor such as "@hourly" or "@every 30s".
// Default: DefaultSweepSchedule.
func WithSchedule(spec string) SweeperOption {
	return func(s *Sweeper) {
		if spec != "" {
			s.schedule = spec
		}
	}
}

// WithSweepTimeout bounds a single sweep. Default: 30 seconds.
func WithSweepTimeout(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithSweepLogger sets the logger for sweep results.
func WithSweepLogger(l *slog.Logger) SweeperOption {
	return func(s *Sweeper) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSweeper creates a stopped Sweeper for m. The schedule is validated
// here, so a bad expression fails at startup rather than silently never
// running.
func NewSweeper(m *Map, opts ...SweeperOption) (*Sweeper, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	s := &Sweeper{
		m:        m,
		logger:   logger.NewNope(),
		schedule: DefaultSweepSchedule,
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	cl := cronLogger{logger: s.logger}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	s.cron = cron.New(
		cron.WithParser(parser),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, s.schedule, err)
	}

	return s, nil
}

// Schedule returns the configured schedule expression.
func (s *Sweeper) Schedule() string {
	return s.schedule
}

// Start begins sweeping in the background. Calling Start on a running
// Sweeper has no effect.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish or for
// ctx to be done.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep runs one sweep immediately and returns the number of removed entries.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	n, err := s.m.RemoveExpired(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "cooldown sweep failed", slog.Any("error", err))
		return n, err
	}
	if n > 0 {
		s.logger.DebugContext(ctx, "removed expired cooldowns", slog.Int("count", n))
	}
	return n, nil
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_, _ = s.Sweep(ctx)
}

// cronLogger routes cron's own messages through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
