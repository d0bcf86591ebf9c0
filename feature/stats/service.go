package stats

import (
	"context"

	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"

	"go.uber.org/zap"
)

// Service answers the aggregate catalog queries.
type Service struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewService creates a new stats service.
func NewService(store *catalog.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Authors returns the top authors by book count.
func (s *Service) Authors(ctx context.Context) ([]catalog.AuthorCount, error) {
	rows, err := s.store.Authors(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list authors", err)
	}
	return rows, nil
}

// Genres returns every assigned genre with its book count.
func (s *Service) Genres(ctx context.Context) ([]catalog.GenreCount, error) {
	rows, err := s.store.Genres(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list genres", err)
	}
	return rows, nil
}

// Stats returns catalog totals.
func (s *Service) Stats(ctx context.Context) (*catalog.Stats, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute stats", err)
	}
	return st, nil
}
