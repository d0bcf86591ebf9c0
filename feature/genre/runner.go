package genre

import (
	"context"
	"fmt"
	"time"

	"ebook-library/core/catalog"
	"ebook-library/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Store is the catalog surface the runner needs.
type Store interface {
	Unclassified(ctx context.Context, limit int) ([]catalog.Book, error)
	SetGenre(ctx context.Context, id uint, genre string) error
}

// RunOptions controls one classification run.
type RunOptions struct {
	// Limit caps how many unclassified books are considered. Zero means all.
	Limit int
	// DryRun computes assignments without writing them.
	DryRun bool
	// RulesOnly skips the remote classifier even when configured.
	RulesOnly bool
}

// Assignment is one book's chosen genre.
type Assignment struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Source string `json:"source"`
}

// Report summarizes a run.
type Report struct {
	Total       int          `json:"total"`
	ByRules     int          `json:"byRules"`
	ByRemote    int          `json:"byRemote"`
	Fallback    int          `json:"fallback"`
	Failed      int          `json:"failed"`
	Pending     int          `json:"pending"`
	Assignments []Assignment `json:"assignments"`
}

// Runner classifies unclassified books: rules first, then the remote classifier in rate limited batches.
type Runner struct {
	store   Store
	rules   *RuleClassifier
	remote  BatchClassifier
	limiter *rate.Limiter
	cfg     Config
	metrics *metrics.Metrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
}

// NewRunner creates a runner. remote and m may be nil.
func NewRunner(store Store, remote BatchClassifier, cfg Config, m *metrics.Metrics, logger *zap.Logger) *Runner {
	cfg = cfg.withDefaults()

	limit := rate.Inf
	if cfg.DelayMs > 0 {
		limit = rate.Every(cfg.Delay())
	}

	return &Runner{
		store:   store,
		rules:   NewRuleClassifier(cfg.MinConfidence),
		remote:  remote,
		limiter: rate.NewLimiter(limit, 1),
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		sleep:   sleepContext,
	}
}

// Run classifies books without a genre.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*Report, error) {
	books, err := r.store.Unclassified(ctx, opts.Limit)
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(books), Assignments: []Assignment{}}
	var pending []catalog.Book

	for _, book := range books {
		match, ok := r.rules.Classify(book.Title, book.Author)
		if !ok {
			pending = append(pending, book)
			continue
		}
		if err := r.assign(ctx, report, book, match.Genre, match.Source, opts.DryRun); err != nil {
			return report, err
		}
		report.ByRules++
	}

	r.logger.Info("Rule classification finished",
		zap.Int("total", report.Total),
		zap.Int("by_rules", report.ByRules),
		zap.Int("pending", len(pending)),
	)

	if r.remote == nil || opts.RulesOnly {
		report.Pending = len(pending)
		return report, nil
	}

	for start := 0; start < len(pending); start += r.cfg.BatchSize {
		end := min(start+r.cfg.BatchSize, len(pending))
		batch := pending[start:end]

		genres, err := r.classifyWithRetry(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				report.Pending += len(pending) - start
				return report, ctx.Err()
			}
			r.logger.Error("Remote classification failed", zap.Int("batch_size", len(batch)), zap.Error(err))
			report.Failed += len(batch)
			continue
		}

		for i, book := range batch {
			genre, source := genres[i], SourceRemote
			if genre == "" {
				genre, source = r.cfg.FallbackGenre, SourceFallback
			}
			if err := r.assign(ctx, report, book, genre, source, opts.DryRun); err != nil {
				return report, err
			}
			if source == SourceRemote {
				report.ByRemote++
			} else {
				report.Fallback++
			}
		}

		r.logger.Info("Remote batch classified", zap.Int("done", end), zap.Int("of", len(pending)))
	}

	return report, nil
}

func (r *Runner) assign(ctx context.Context, report *Report, book catalog.Book, genre, source string, dryRun bool) error {
	if !dryRun {
		if err := r.store.SetGenre(ctx, book.ID, genre); err != nil {
			return fmt.Errorf("assign genre: %w", err)
		}
		if r.metrics != nil {
			r.metrics.ClassifiedTotal.WithLabelValues(source).Inc()
		}
	}
	report.Assignments = append(report.Assignments, Assignment{ID: book.ID, Title: book.Title, Genre: genre, Source: source})
	return nil
}

// classifyWithRetry waits for the limiter, then retries failures with doubling backoff.
func (r *Runner) classifyWithRetry(ctx context.Context, batch []catalog.Book) ([]string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			r.logger.Warn("Retrying remote classification", zap.Int("attempt", attempt), zap.Error(lastErr))
			if err := r.sleep(ctx, r.cfg.Backoff(attempt-1)); err != nil {
				return nil, err
			}
		}
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		genres, err := r.remote.ClassifyBatch(ctx, batch)
		if err == nil {
			if len(genres) < len(batch) {
				genres = append(genres, make([]string, len(batch)-len(genres))...)
			}
			return genres, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d retries: %w", r.cfg.MaxRetries, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
