package logger

import (
	"context"
	"log/slog"
	"slices"
)

type attrsKey struct{}

// ContextWithAttrs returns a copy of ctx carrying attrs in addition to any
// attributes already attached. Records logged with the returned context get
// them through the LogHandlerDecorator.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	prev := AttrsFromContext(ctx)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

// AttrsFromContext returns the attributes attached with ContextWithAttrs.
func AttrsFromContext(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	return slices.Clip(attrs)
}
