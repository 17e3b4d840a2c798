package message

import (
	"context"
	"errors"
	"log/slog"
)

// Sender delivers a processed record through one channel.
// Senders must return nil for recipients they cannot reach, so several
// channels can be registered side by side.
type Sender interface {
	Send(ctx context.Context, recipient any, rec Record) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, recipient any, rec Record) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, recipient any, rec Record) error {
	return f(ctx, recipient, rec)
}

// ChatReceiver is a recipient that accepts chat lines.
type ChatReceiver interface {
	SendMessage(text string) error
}

// TitleReceiver is a recipient that can show an on-screen title.
type TitleReceiver interface {
	ShowTitle(title Title) error
}

// ChatSender delivers the body line by line to ChatReceiver recipients.
type ChatSender struct{}

// Send implements Sender. Every line is attempted; failures are joined.
func (ChatSender) Send(_ context.Context, recipient any, rec Record) error {
	r, ok := recipient.(ChatReceiver)
	if !ok || !rec.HasBody() {
		return nil
	}

	var errs []error
	for _, line := range rec.Lines() {
		if err := r.SendMessage(line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TitleSender shows the title to TitleReceiver recipients.
type TitleSender struct{}

// Send implements Sender.
func (TitleSender) Send(_ context.Context, recipient any, rec Record) error {
	r, ok := recipient.(TitleReceiver)
	if !ok || rec.Title.IsEmpty() {
		return nil
	}
	return r.ShowTitle(rec.Title)
}

// LogSender writes records for recipients that have no chat of their own,
// such as the server console, to a logger.
type LogSender struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSender creates a LogSender logging at level.
func NewLogSender(logger *slog.Logger, level slog.Level) *LogSender {
	return &LogSender{logger: logger, level: level}
}

// Send implements Sender. Recipients that implement ChatReceiver are
// skipped.
func (s *LogSender) Send(ctx context.Context, recipient any, rec Record) error {
	if _, ok := recipient.(ChatReceiver); ok || s.logger == nil {
		return nil
	}
	for _, line := range rec.Lines() {
		s.logger.Log(ctx, s.level, line, slog.String("message", rec.Key.String()))
	}
	return nil
}

var (
	_ Sender = ChatSender{}
	_ Sender = TitleSender{}
	_ Sender = (*LogSender)(nil)
	_ Sender = SenderFunc(nil)
)
