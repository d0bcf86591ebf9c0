package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"ebook-library/core/catalog"
	"ebook-library/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ImportReport summarizes one import.
type ImportReport struct {
	Read     int   `json:"read"`
	Invalid  int   `json:"invalid"`
	Inserted int64 `json:"inserted"`
	Skipped  int64 `json:"skipped"`
}

// Importer loads JSON datasets into the catalog. Entries whose path is already cataloged are skipped.
type Importer struct {
	store         *catalog.Store
	client        storage.Client
	storage       storage.Config
	unknownAuthor string
	logger        *zap.Logger
}

// NewImporter creates an importer. client may be nil when the bucket is not used.
func NewImporter(store *catalog.Store, client storage.Client, cfg storage.Config, unknownAuthor string, logger *zap.Logger) *Importer {
	return &Importer{
		store:         store,
		client:        client,
		storage:       cfg,
		unknownAuthor: unknownAuthor,
		logger:        logger,
	}
}

// ImportReader decodes a JSON array of books from r and inserts the new ones.
func (i *Importer) ImportReader(ctx context.Context, r io.Reader) (*ImportReport, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	report := &ImportReport{Read: len(raw)}
	seen := make(map[string]struct{}, len(raw))
	books := make([]catalog.Book, 0, len(raw))
	for _, rec := range raw {
		b, ok := toBook(rec, i.unknownAuthor)
		if !ok {
			report.Invalid++
			continue
		}
		if _, dup := seen[b.FilePath]; dup {
			continue
		}
		seen[b.FilePath] = struct{}{}
		books = append(books, b)
	}

	inserted, err := i.store.Import(ctx, books)
	if err != nil {
		return nil, err
	}
	report.Inserted = inserted
	report.Skipped = int64(report.Read-report.Invalid) - inserted

	i.logger.Info("Dataset imported",
		zap.Int("read", report.Read),
		zap.Int64("inserted", report.Inserted),
		zap.Int64("skipped", report.Skipped),
		zap.Int("invalid", report.Invalid),
	)
	return report, nil
}

// ImportFile imports a dataset from the local disk.
func (i *Importer) ImportFile(ctx context.Context, path string) (*ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return i.ImportReader(ctx, f)
}

// ImportObject imports a dataset stored in the bucket under the configured prefix.
func (i *Importer) ImportObject(ctx context.Context, name string) (*ImportReport, error) {
	if i.client == nil {
		return nil, errors.New("object storage is not configured")
	}
	obj, err := i.client.GetObject(ctx, i.storage.Bucket, i.storage.ObjectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get dataset object: %w", err)
	}
	defer obj.Close()
	return i.ImportReader(ctx, obj)
}

// ImportIfEmpty imports path only when the catalog has no books. A missing file is not an error.
func (i *Importer) ImportIfEmpty(ctx context.Context, path string) (*ImportReport, error) {
	n, err := i.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		i.logger.Info("Catalog already populated", zap.Int64("books", n))
		return nil, nil
	}

	report, err := i.ImportFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		i.logger.Warn("Dataset file not found, starting with an empty catalog", zap.String("path", path))
		return nil, nil
	}
	return report, err
}
