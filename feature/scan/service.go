package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ebook-library/core/metrics"
	"ebook-library/core/reconcile"
	"ebook-library/core/scanner"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Scan modes recorded on metrics and logs.
const (
	ModeRequest   = "request"
	ModeScheduled = "scheduled"
	ModeCLI       = "cli"
)

// Runner executes a reconcile run for one root.
type Runner interface {
	Run(ctx context.Context, root string, opts reconcile.Options) (*reconcile.Plan, *reconcile.Result, error)
	Apply(ctx context.Context, plan *reconcile.Plan) (*reconcile.Result, error)
}

// Service serializes scans. Concurrent requests for the same root and mode share one run.
type Service struct {
	runner        Runner
	unknownAuthor string
	metrics       *metrics.Metrics
	logger        *zap.Logger

	mu    sync.Mutex
	group singleflight.Group
}

// NewService creates a scan service. m may be nil.
func NewService(runner Runner, unknownAuthor string, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		runner:        runner,
		unknownAuthor: unknownAuthor,
		metrics:       m,
		logger:        logger,
	}
}

type outcome struct {
	plan   *reconcile.Plan
	result *reconcile.Result
}

// Scan reconciles the catalog with dirPath. With dryRun set nothing is written and the plan is returned.
func (s *Service) Scan(ctx context.Context, dirPath string, dryRun bool, mode string) (*reconcile.Plan, *reconcile.Result, error) {
	root, err := scanner.ResolveRoot(dirPath)
	if err != nil {
		return nil, nil, err
	}

	// Joined callers share the run, so one caller going away must not cancel it for the rest.
	runCtx := context.WithoutCancel(ctx)
	key := fmt.Sprintf("%s|%t", root, dryRun)
	v, err, shared := s.group.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		started := time.Now()
		plan, result, err := s.runner.Run(runCtx, root, reconcile.Options{
			DryRun:        dryRun,
			UnknownAuthor: s.unknownAuthor,
		})
		s.observe(mode, started, result, err)
		if err != nil {
			return nil, err
		}
		return outcome{plan: plan, result: result}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	out := v.(outcome)
	s.logger.Info("Scan finished",
		zap.String("root", root),
		zap.String("mode", mode),
		zap.Bool("dry_run", dryRun),
		zap.Bool("shared", shared),
		zap.Int("added", out.result.Added),
		zap.Int("removed", out.result.Removed),
		zap.Int("found", out.result.TotalFound),
		zap.Bool("truncated", out.result.Truncated),
	)
	return out.plan, out.result, nil
}

// Apply writes a plan the caller already reviewed, serialized with every other scan.
func (s *Service) Apply(ctx context.Context, plan *reconcile.Plan, mode string) (*reconcile.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	result, err := s.runner.Apply(ctx, plan)
	s.observe(mode, started, result, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Scan plan applied",
		zap.String("root", plan.Root),
		zap.String("mode", mode),
		zap.Int("added", result.Added),
		zap.Int("removed", result.Removed),
	)
	return result, nil
}

func (s *Service) observe(mode string, started time.Time, result *reconcile.Result, err error) {
	if s.metrics == nil {
		return
	}
	if err != nil || result == nil {
		s.metrics.ObserveScan(mode, started, 0, 0, 0, false, err)
		return
	}
	if result.DryRun {
		s.metrics.ObserveScan(mode, started, 0, 0, result.TotalFound, result.Truncated, nil)
		return
	}
	s.metrics.ObserveScan(mode, started, result.Added, result.Removed, result.TotalFound, result.Truncated, nil)
}
