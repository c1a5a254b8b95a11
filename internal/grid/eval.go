package grid

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"magnetite/internal/logging"
	"magnetite/internal/mathutil"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Evaluator is anything that yields a field value at a point.
// Implementations must be safe for concurrent use; *biot.Field is.
type Evaluator interface {
	EvalAtPoint(p mathutil.Location) mathutil.Vector
}

type options struct {
	workers  int
	logger   *slog.Logger
	interval time.Duration
}

// Option configures Evaluate.
type Option func(*options)

// WithWorkers bounds the number of rows evaluated concurrently.
// Values <= 0 mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used for progress reports.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logging.Noop()
		}
		o.logger = l
	}
}

// WithProgressInterval sets the minimum time between progress reports.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.interval = d
	}
}

// Evaluate samples ev at every point of g. Rows are evaluated in parallel;
// each sample is written once by exactly one worker, so no locking is
// needed. Cancelling ctx stops scheduling further rows.
func Evaluate(ctx context.Context, ev Evaluator, g Grid, opts ...Option) (*Result, error) {
	o := options{
		logger:   logging.Noop(),
		interval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Grid:  g,
		Field: make([]mathutil.Vector, g.Len()),
	}

	var rowsDone atomic.Int64
	progress := rate.Sometimes{Interval: o.interval}
	start := time.Now()

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)

	for row := 0; row < g.Rows; row++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			base := row * g.Cols
			for col := 0; col < g.Cols; col++ {
				res.Field[base+col] = ev.EvalAtPoint(g.Point(base + col))
			}

			n := rowsDone.Add(1)
			progress.Do(func() {
				elapsed := time.Since(start).Seconds()
				o.logger.InfoContext(gctx, "grid progress",
					"rows", n,
					"total", g.Rows,
					"rows_per_sec", float64(n)/elapsed,
				)
			})
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("grid: evaluate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("grid: evaluate: %w", err)
	}

	res.Undefined = roaring.New()
	for i, v := range res.Field {
		if !v.IsFinite() {
			res.Undefined.Add(uint32(i))
		}
	}

	o.logger.DebugContext(ctx, "grid evaluated",
		"plane", g.Plane,
		"samples", g.Len(),
		"undefined", res.Undefined.GetCardinality(),
		"workers", o.workers,
		"elapsed", time.Since(start),
	)
	return res, nil
}
