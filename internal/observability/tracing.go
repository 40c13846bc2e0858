package observability

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/symdoc/internal/logfields"
)

// Span times one unit of work, such as rendering a collection.
type Span struct {
	ctx       context.Context
	name      string
	startTime time.Time
	attrs     []slog.Attr
	err       error
}

// StartSpan starts timing the named operation. The returned context carries
// the span so nested code can annotate it.
func StartSpan(ctx context.Context, name string, attrs ...slog.Attr) (context.Context, *Span) {
	span := &Span{ctx: ctx, name: name, startTime: time.Now(), attrs: attrs}
	DebugContext(ctx, "Span started", slog.String("span", name))
	return context.WithValue(ctx, spanContextKey, span), span
}

// SetAttribute attaches an attribute that is logged when the span ends.
func (s *Span) SetAttribute(attr slog.Attr) {
	s.attrs = append(s.attrs, attr)
}

// RecordError remembers err; the span ends at error level.
func (s *Span) RecordError(err error) {
	if err != nil {
		s.err = err
	}
}

// End logs the span and returns its duration.
func (s *Span) End() time.Duration {
	duration := time.Since(s.startTime)
	attrs := append([]slog.Attr{slog.String("span", s.name), logfields.Duration(duration)}, s.attrs...)
	if s.err != nil {
		ErrorContext(s.ctx, "Span failed", append(attrs, logfields.Error(s.err))...)
		return duration
	}
	DebugContext(s.ctx, "Span ended", attrs...)
	return duration
}

// Context key for storing span context.
type contextKey string

const spanContextKey contextKey = "span"

// SpanFromContext extracts span from context.
func SpanFromContext(ctx context.Context) (*Span, bool) {
	span, ok := ctx.Value(spanContextKey).(*Span)
	return span, ok
}
