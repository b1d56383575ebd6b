package batch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pwstrength/internal/strength"
)

// DefaultConcurrency is used when no concurrency is configured.
const DefaultConcurrency = 10

// Analyzer is the part of *strength.Analyzer a Processor needs.
type Analyzer interface {
	Analyze(password string) *strength.Result
}

// Processor fans analysis out over a bounded number of goroutines.
// The Analyzer is shared; it must be safe for concurrent use.
type Processor struct {
	analyzer    Analyzer
	concurrency int
	logger      *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger used for batch-level messages.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor around analyzer.
func NewProcessor(analyzer Analyzer, opts ...Option) *Processor {
	p := &Processor{
		analyzer:    analyzer,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Process analyzes every password and returns the results in input order.
// If ctx is cancelled, unstarted analyses are skipped, their slots stay nil,
// and the context error is returned.
func (p *Processor) Process(ctx context.Context, passwords []string) ([]*strength.Result, error) {
	results := make([]*strength.Result, len(passwords))
	err := p.run(ctx, passwords, func(i int, r *strength.Result) {
		// Each goroutine writes a distinct index.
		results[i] = r
	})
	return results, err
}

// ProcessWithCallback analyzes every password and calls fn as each analysis
// finishes. fn runs on worker goroutines, in completion order, and must be
// safe for concurrent use.
func (p *Processor) ProcessWithCallback(ctx context.Context, passwords []string, fn func(index int, result *strength.Result)) error {
	return p.run(ctx, passwords, fn)
}

func (p *Processor) run(ctx context.Context, passwords []string, fn func(int, *strength.Result)) error {
	p.logger.Debug("starting batch analysis",
		"total", len(passwords),
		"concurrency", p.concurrency,
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, password := range passwords {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i, p.analyzer.Analyze(password))
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// The scheduling loop can stop on cancellation before any worker sees it.
		err = ctx.Err()
	}

	p.logger.Debug("batch analysis complete",
		"total", len(passwords),
		"elapsed", time.Since(start),
	)
	return err
}
