package books

import (
	"context"
	"os"

	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"
	"ebook-library/core/library"
	"ebook-library/core/pagination"

	"go.uber.org/zap"
)

// ListResponse is the body of GET /books.
type ListResponse struct {
	Books      []catalog.Book      `json:"books"`
	Pagination pagination.Metadata `json:"pagination"`
}

// Service handles book queries and edits.
type Service struct {
	store   *catalog.Store
	library library.Config
	opener  Opener
	logger  *zap.Logger
}

// NewService creates a new books service.
func NewService(store *catalog.Store, lib library.Config, opener Opener, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		library: lib,
		opener:  opener,
		logger:  logger,
	}
}

// List returns one filtered page of books.
func (s *Service) List(ctx context.Context, f catalog.Filter) (*ListResponse, error) {
	books, meta, err := s.store.List(ctx, f)
	if err != nil {
		return nil, apperrors.Internal("Failed to list books", err)
	}
	return &ListResponse{Books: books, Pagination: meta}, nil
}

// Get returns a single book.
func (s *Service) Get(ctx context.Context, id uint) (*catalog.Book, error) {
	book, err := s.store.Get(ctx, id)
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.Internal("Failed to load book", err)
	}
	return book, err
}

// UpdateGenre overwrites a book's genre and description.
func (s *Service) UpdateGenre(ctx context.Context, id uint, genre, description *string) error {
	err := s.store.UpdateGenre(ctx, id, genre, description)
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Internal("Failed to update genre", err)
	}
	return err
}

// OpenFolder maps filePath onto the local disk and reveals it. It returns the mapped path.
func (s *Service) OpenFolder(ctx context.Context, filePath string) (string, error) {
	if filePath == "" {
		return "", apperrors.Validation("File path is required")
	}

	mapped := s.library.MapPath(filePath)
	if _, err := os.Stat(mapped); err != nil {
		return mapped, apperrors.NotFound("File not found. Make sure the drive is connected.").WithCause(err)
	}

	if err := s.opener.Reveal(ctx, mapped); err != nil {
		return mapped, apperrors.Internal("Failed to open folder", err)
	}
	return mapped, nil
}
