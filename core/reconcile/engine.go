package reconcile

import (
	"context"

	"ebook-library/core/apperrors"
	"ebook-library/core/scanner"

	"go.uber.org/zap"
)

// Engine scans a root and reconciles the catalog with what it finds.
type Engine struct {
	scanner *scanner.Scanner
	catalog Catalog
	logger  *zap.Logger
}

// NewEngine creates an engine.
func NewEngine(s *scanner.Scanner, c Catalog, logger *zap.Logger) *Engine {
	return &Engine{scanner: s, catalog: c, logger: logger}
}

// Plan scans root and diffs it against the catalog without writing.
func (e *Engine) Plan(ctx context.Context, root string, opts Options) (*Plan, error) {
	res, err := e.scanner.Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	existing, err := e.catalog.Paths(ctx)
	if err != nil {
		return nil, apperrors.Internal("Database read failed", err)
	}

	plan := BuildPlan(res, existing, opts)
	e.logger.Debug("Reconcile plan built",
		zap.String("root", plan.Root),
		zap.Int("found", plan.Summary.TotalFound),
		zap.Int("added", plan.Summary.Added),
		zap.Int("removed", plan.Summary.Removed),
		zap.Bool("truncated", plan.Summary.Truncated),
	)
	return plan, nil
}

// Run plans and, unless opts.DryRun is set, applies the plan.
func (e *Engine) Run(ctx context.Context, root string, opts Options) (*Plan, *Result, error) {
	plan, err := e.Plan(ctx, root, opts)
	if err != nil {
		return nil, nil, err
	}
	if opts.DryRun {
		result := resultOf(plan)
		result.DryRun = true
		return plan, result, nil
	}

	result, err := e.Apply(ctx, plan)
	if err != nil {
		return plan, nil, err
	}
	return plan, result, nil
}

// Apply writes an already built plan without rescanning.
func (e *Engine) Apply(ctx context.Context, plan *Plan) (*Result, error) {
	if _, err := ApplyPlan(ctx, e.catalog, plan, Options{Confirmed: true}); err != nil {
		e.logger.Error("Failed to apply reconcile plan", zap.String("root", plan.Root), zap.Error(err))
		return nil, err
	}
	return resultOf(plan), nil
}

func resultOf(plan *Plan) *Result {
	return &Result{
		Added:      plan.Summary.Added,
		Removed:    plan.Summary.Removed,
		TotalFound: plan.Summary.TotalFound,
		Truncated:  plan.Summary.Truncated,
	}
}
