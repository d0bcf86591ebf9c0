package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"
	"ebook-library/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// exportBatch is the number of rows read per query.
const exportBatch = 1000

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", apperrors.Validationf("Unsupported export format: %s", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// Exporter writes the whole catalog as JSON or CSV.
type Exporter struct {
	store   *catalog.Store
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
}

// NewExporter creates an exporter. client may be nil when the bucket is not used.
func NewExporter(store *catalog.Store, client storage.Client, cfg storage.Config, logger *zap.Logger) *Exporter {
	return &Exporter{store: store, client: client, storage: cfg, logger: logger}
}

// Write streams every book to w in id order and returns the number written.
func (e *Exporter) Write(ctx context.Context, w io.Writer, format Format) (int, error) {
	if format == FormatCSV {
		return e.writeCSV(ctx, w)
	}
	return e.writeJSON(ctx, w)
}

func (e *Exporter) writeJSON(ctx context.Context, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	if _, err := bw.WriteString("["); err != nil {
		return 0, err
	}

	err := e.store.Each(ctx, exportBatch, func(books []catalog.Book) error {
		for _, b := range books {
			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			enc.SetEscapeHTML(false)
			enc.SetIndent("  ", "  ")
			if err := enc.Encode(b); err != nil {
				return err
			}
			sep := ",\n  "
			if n == 0 {
				sep = "\n  "
			}
			if _, err := bw.WriteString(sep); err != nil {
				return err
			}
			if _, err := bw.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("export json: %w", err)
	}

	tail := "\n]\n"
	if n == 0 {
		tail = "]\n"
	}
	if _, err := bw.WriteString(tail); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

func (e *Exporter) writeCSV(ctx context.Context, w io.Writer) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, err
	}

	n := 0
	err := e.store.Each(ctx, exportBatch, func(books []catalog.Book) error {
		for _, b := range books {
			if err := cw.Write(row(b)); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("export csv: %w", err)
	}

	cw.Flush()
	return n, cw.Error()
}

// ExportFile writes the catalog to path, replacing any existing file.
func (e *Exporter) ExportFile(ctx context.Context, path string, format Format) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}

	n, err := e.Write(ctx, f, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}

	e.logger.Info("Dataset exported", zap.String("path", path), zap.String("format", string(format)), zap.Int("books", n))
	return n, nil
}

// ExportObject uploads the catalog to the bucket and returns the object name.
func (e *Exporter) ExportObject(ctx context.Context, name string, format Format) (string, int, error) {
	if e.client == nil {
		return "", 0, fmt.Errorf("object storage is not configured")
	}

	var buf bytes.Buffer
	n, err := e.Write(ctx, &buf, format)
	if err != nil {
		return "", n, err
	}

	if err := storage.EnsureBucket(ctx, e.client, e.storage.Bucket, e.storage.Region); err != nil {
		return "", n, err
	}

	object := e.storage.ObjectName(name)
	size := int64(buf.Len())
	_, err = e.client.PutObject(ctx, e.storage.Bucket, object, &buf, size, minio.PutObjectOptions{
		ContentType: format.ContentType(),
	})
	if err != nil {
		return "", n, fmt.Errorf("upload export: %w", err)
	}

	e.logger.Info("Dataset uploaded",
		zap.String("bucket", e.storage.Bucket),
		zap.String("object", object),
		zap.Int("books", n),
		zap.Int64("bytes", size),
	)
	return object, n, nil
}
