package integrity

import (
	"context"

	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"
	"ebook-library/core/reconcile"
	"ebook-library/core/scanner"
	"ebook-library/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report combines every integrity check for one root.
type Report struct {
	Root   string                 `json:"root"`
	Counts *checks.CountReport    `json:"counts"`
	Plan   *reconcile.PlanSummary `json:"plan"`
	Schema *checks.SchemaReport   `json:"schema"`
}

// Service handles integrity checks.
type Service struct {
	scanner       *scanner.Scanner
	store         *catalog.Store
	unknownAuthor string
	logger        *zap.Logger
}

// NewService creates a new integrity service.
func NewService(s *scanner.Scanner, store *catalog.Store, unknownAuthor string, logger *zap.Logger) *Service {
	return &Service{
		scanner:       s,
		store:         store,
		unknownAuthor: unknownAuthor,
		logger:        logger,
	}
}

// CheckSchema verifies the books table columns.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.store.DB())
}

// CheckRoot scans root once and reports disk vs catalog counts and the pending reconcile plan.
// Nothing is written.
func (s *Service) CheckRoot(ctx context.Context, root string) (*Report, error) {
	res, err := s.scanner.Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	dbCounts, err := s.store.CountByExtension(ctx, res.Root)
	if err != nil {
		return nil, apperrors.Internal("Database read failed", err)
	}
	existing, err := s.store.Paths(ctx)
	if err != nil {
		return nil, apperrors.Internal("Database read failed", err)
	}

	plan := reconcile.BuildPlan(res, existing, reconcile.Options{UnknownAuthor: s.unknownAuthor})

	schema, err := s.CheckSchema()
	if err != nil {
		return nil, apperrors.Internal("Schema check failed", err)
	}

	return &Report{
		Root:   res.Root,
		Counts: checks.CompareCounts(scanner.CountByExtension(res.Files), dbCounts),
		Plan:   &plan.Summary,
		Schema: schema,
	}, nil
}
