package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"ebook-library/core/apperrors"
	"ebook-library/core/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// AuthorsLimit caps the authors listing.
	AuthorsLimit = 100
	// BatchSize bounds multi-row inserts and IN lists.
	BatchSize = 500
)

// Store owns all queries against the books table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the books table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Book{}); err != nil {
		return fmt.Errorf("migrate books: %w", err)
	}
	return nil
}

func (s *Store) filtered(ctx context.Context, f Filter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&Book{})
	if f.Search != "" {
		p := containsPattern(f.Search)
		q = q.Where("(title LIKE ? ESCAPE '!' OR author LIKE ? ESCAPE '!' OR file_path LIKE ? ESCAPE '!')", p, p, p)
	}
	if f.Genre != "" {
		q = q.Where("genre LIKE ? ESCAPE '!'", containsPattern(f.Genre))
	}
	if f.Author != "" {
		q = q.Where("author LIKE ? ESCAPE '!'", containsPattern(f.Author))
	}
	if f.FileType != "" {
		q = q.Where("file_extension = ?", strings.ToLower(strings.TrimPrefix(f.FileType, ".")))
	}
	return q
}

// List returns one page of books matching f, ordered by title.
func (s *Store) List(ctx context.Context, f Filter) ([]Book, pagination.Metadata, error) {
	page, limit := pagination.Normalize(f.Page, f.Limit)

	var total int64
	if err := s.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, pagination.Metadata{}, fmt.Errorf("count books: %w", err)
	}

	books := []Book{}
	err := s.filtered(ctx, f).
		Order("title ASC").Order("id ASC").
		Offset(pagination.Offset(page, limit)).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, pagination.Metadata{}, fmt.Errorf("list books: %w", err)
	}

	return books, pagination.Calculate(total, page, limit), nil
}

// Get returns the book with id or a not-found error.
func (s *Store) Get(ctx context.Context, id uint) (*Book, error) {
	var book Book
	err := s.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Book not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

// UpdateGenre overwrites genre and description. Nil clears a field.
func (s *Store) UpdateGenre(ctx context.Context, id uint, genre, description *string) error {
	res := s.db.WithContext(ctx).Model(&Book{}).Where("id = ?", id).
		Updates(map[string]any{"genre": genre, "description": description})
	if res.Error != nil {
		return fmt.Errorf("update genre of book %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows for a no-op update.
		var count int64
		if err := s.db.WithContext(ctx).Model(&Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("check book %d: %w", id, err)
		}
		if count == 0 {
			return apperrors.NotFound("Book not found")
		}
	}
	return nil
}

// Authors returns the authors with the most books, highest count first.
func (s *Store) Authors(ctx context.Context) ([]AuthorCount, error) {
	rows := []AuthorCount{}
	err := s.db.WithContext(ctx).Model(&Book{}).
		Select("author, COUNT(*) AS book_count").
		Group("author").
		Order("book_count DESC").Order("author ASC").
		Limit(AuthorsLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return rows, nil
}

// Genres returns every non-empty genre with its book count, highest first.
func (s *Store) Genres(ctx context.Context) ([]GenreCount, error) {
	rows := []GenreCount{}
	err := s.db.WithContext(ctx).Model(&Book{}).
		Select("genre, COUNT(*) AS book_count").
		Where("genre IS NOT NULL AND genre <> ''").
		Group("genre").
		Order("book_count DESC").Order("genre ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return rows, nil
}

// Stats returns totals and the per-extension breakdown.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{FileTypes: []FileTypeCount{}}
	db := s.db.WithContext(ctx)

	if err := db.Model(&Book{}).Count(&stats.TotalBooks).Error; err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}
	if err := db.Model(&Book{}).Distinct("author").Count(&stats.TotalAuthors).Error; err != nil {
		return nil, fmt.Errorf("count authors: %w", err)
	}
	err := db.Model(&Book{}).
		Select("file_extension, COUNT(*) AS count").
		Group("file_extension").
		Order("count DESC").Order("file_extension ASC").
		Scan(&stats.FileTypes).Error
	if err != nil {
		return nil, fmt.Errorf("count file types: %w", err)
	}
	return stats, nil
}

// Count returns the number of books.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Book{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// Paths returns the id and path of every book.
func (s *Store) Paths(ctx context.Context) ([]PathRef, error) {
	refs := []PathRef{}
	if err := s.db.WithContext(ctx).Model(&Book{}).Select("id, file_path").Order("id").Scan(&refs).Error; err != nil {
		return nil, fmt.Errorf("load book paths: %w", err)
	}
	return refs, nil
}

// underRoot restricts q to paths equal to root or below it.
func underRoot(q *gorm.DB, root string) *gorm.DB {
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	return q.Where("(file_path = ? OR file_path LIKE ? ESCAPE '!')", root, prefixPattern(prefix))
}

// CountByExtension counts books stored below root per extension.
func (s *Store) CountByExtension(ctx context.Context, root string) (map[string]int64, error) {
	var rows []FileTypeCount
	err := underRoot(s.db.WithContext(ctx).Model(&Book{}), root).
		Select("file_extension, COUNT(*) AS count").
		Group("file_extension").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count books under %s: %w", root, err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.FileExtension] = r.Count
	}
	return counts, nil
}

// ApplyChanges inserts added and deletes removedIDs in a single transaction.
// Inserts run first; any failure rolls back both.
func (s *Store) ApplyChanges(ctx context.Context, added []Book, removedIDs []uint) error {
	if len(added) == 0 && len(removedIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(added) > 0 {
			if err := tx.CreateInBatches(&added, BatchSize).Error; err != nil {
				return fmt.Errorf("insert books: %w", err)
			}
		}
		for start := 0; start < len(removedIDs); start += BatchSize {
			end := min(start+BatchSize, len(removedIDs))
			if err := tx.Where("id IN ?", removedIDs[start:end]).Delete(&Book{}).Error; err != nil {
				return fmt.Errorf("delete books: %w", err)
			}
		}
		return nil
	})
}

// Import inserts books, skipping any whose path already exists. It returns the number inserted.
func (s *Store) Import(ctx context.Context, books []Book) (int64, error) {
	if len(books) == 0 {
		return 0, nil
	}
	var inserted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(books); start += BatchSize {
			end := min(start+BatchSize, len(books))
			batch := books[start:end]
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch)
			if res.Error != nil {
				return fmt.Errorf("import books: %w", res.Error)
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Each calls fn with successive batches of books in id order.
func (s *Store) Each(ctx context.Context, batchSize int, fn func([]Book) error) error {
	var batch []Book
	res := s.db.WithContext(ctx).FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
		return fn(batch)
	})
	if res.Error != nil {
		return fmt.Errorf("iterate books: %w", res.Error)
	}
	return nil
}

// Unclassified returns up to limit books without a genre, oldest id first.
func (s *Store) Unclassified(ctx context.Context, limit int) ([]Book, error) {
	books := []Book{}
	q := s.db.WithContext(ctx).Where("genre IS NULL OR genre = ''").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list unclassified books: %w", err)
	}
	return books, nil
}

// SetGenre assigns genre to a single book without touching its description.
func (s *Store) SetGenre(ctx context.Context, id uint, genre string) error {
	res := s.db.WithContext(ctx).Model(&Book{}).Where("id = ?", id).Update("genre", genre)
	if res.Error != nil {
		return fmt.Errorf("set genre of book %d: %w", id, res.Error)
	}
	return nil
}

// RenameGenres applies every alias to canonical rename in one transaction and
// returns the number of rows changed per alias.
func (s *Store) RenameGenres(ctx context.Context, aliases map[string]string) (map[string]int64, error) {
	changed := make(map[string]int64, len(aliases))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for from, to := range aliases {
			if from == to {
				continue
			}
			res := tx.Model(&Book{}).Where("genre = ?", from).Update("genre", to)
			if res.Error != nil {
				return fmt.Errorf("rename genre %q: %w", from, res.Error)
			}
			changed[from] = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// UpdateNames writes title/author changes in one transaction.
func (s *Store) UpdateNames(ctx context.Context, updates []NameUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			err := tx.Model(&Book{}).Where("id = ?", u.ID).
				Updates(map[string]any{"title": u.Title, "author": u.Author}).Error
			if err != nil {
				return fmt.Errorf("update names of book %d: %w", u.ID, err)
			}
		}
		return nil
	})
}
