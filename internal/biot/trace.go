package biot

import (
	"context"
	"log/slog"

	"magnetite/internal/mathutil"
)

// TermsEvent is emitted once per segment per evaluated point.
type TermsEvent struct {
	Segment int
	Point   mathutil.Location
	Terms   Terms
	Field   mathutil.Vector
}

// Tracer observes segment evaluations. Implementations must be safe for
// concurrent use, since a traced Field may be queried in parallel.
type Tracer interface {
	TraceTerms(ev TermsEvent)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(ev TermsEvent)

func (fn TracerFunc) TraceTerms(ev TermsEvent) { fn(ev) }

type slogTracer struct {
	logger *slog.Logger
}

// NewSlogTracer returns a Tracer that logs each event at debug level.
func NewSlogTracer(logger *slog.Logger) Tracer {
	return slogTracer{logger: logger}
}

func (t slogTracer) TraceTerms(ev TermsEvent) {
	ctx := context.Background()
	if !t.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	t.logger.LogAttrs(ctx, slog.LevelDebug, "segment terms",
		slog.Int("segment", ev.Segment),
		slog.Any("point", ev.Point),
		slog.Float64("a", ev.Terms.A),
		slog.Float64("b", ev.Terms.B),
		slog.Float64("delta", ev.Terms.Delta),
		slog.Bool("finite", ev.Field.IsFinite()),
	)
}
