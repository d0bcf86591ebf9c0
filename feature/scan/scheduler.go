package scan

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler rescans the configured roots on a cron expression.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	roots   []string
	logger  *zap.Logger
}

// NewScheduler parses spec and registers one job covering all roots.
func NewScheduler(spec string, roots []string, service *Service, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		service: service,
		roots:   roots,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid rescan schedule %q: %w", spec, err)
	}
	return s, nil
}

// RunOnce scans every root in order. A failing root is logged and the rest still run.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	failed := 0
	for _, root := range s.roots {
		if _, _, err := s.service.Scan(ctx, root, false, ModeScheduled); err != nil {
			failed++
			s.logger.Error("Scheduled scan failed", zap.String("root", root), zap.Error(err))
		}
	}
	return failed
}

// Start begins the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduled rescans enabled", zap.Strings("roots", s.roots))
}

// Stop halts the schedule and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
