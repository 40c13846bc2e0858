// Package observability carries render fields such as the run ID through a
// context.Context and adds them to every log record written with that
// context.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/symdoc/internal/logfields"
)

// LogContext is the set of fields attached to a context.
type LogContext struct {
	RunID      string
	Stage      string
	Collection string
}

func (lc LogContext) attrs() []slog.Attr {
	var attrs []slog.Attr
	if lc.RunID != "" {
		attrs = append(attrs, logfields.RunID(lc.RunID))
	}
	if lc.Stage != "" {
		attrs = append(attrs, logfields.Stage(lc.Stage))
	}
	if lc.Collection != "" {
		attrs = append(attrs, logfields.Collection(lc.Collection))
	}
	return attrs
}

type logContextKey struct{}

// GetContext returns the fields attached to ctx.
func GetContext(ctx context.Context) LogContext {
	lc, _ := ctx.Value(logContextKey{}).(LogContext)
	return lc
}

func with(ctx context.Context, set func(*LogContext)) context.Context {
	lc := GetContext(ctx)
	set(&lc)
	return context.WithValue(ctx, logContextKey{}, lc)
}

// WithRunID tags ctx with the render run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return with(ctx, func(lc *LogContext) { lc.RunID = runID })
}

// WithStage tags ctx with a pipeline stage such as "render" or "assets".
func WithStage(ctx context.Context, stage string) context.Context {
	return with(ctx, func(lc *LogContext) { lc.Stage = stage })
}

// WithCollection tags ctx with the symbol collection being rendered.
func WithCollection(ctx context.Context, collection string) context.Context {
	return with(ctx, func(lc *LogContext) { lc.Collection = collection })
}

// Handler adds the context fields to each record before passing it on.
type Handler struct {
	next slog.Handler
}

// NewHandler wraps next. Wrapping a Handler again returns it unchanged.
func NewHandler(next slog.Handler) *Handler {
	if h, ok := next.(*Handler); ok {
		return h
	}
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := GetContext(ctx).attrs(); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name)}
}

// DebugContext logs at debug level on the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// InfoContext logs at info level on the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// WarnContext logs at warn level on the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// ErrorContext logs at error level on the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
