package dataset

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ebook-library/core/storage"
	"ebook-library/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleDataset = `[
  {"title": "1984", "author": "George Orwell", "fileName": "George Orwell - 1984.pdf", "fileExtension": "pdf", "filePath": "/lib/1984.pdf", "addedDate": "2024-01-02", "genre": "Roman", "rating": "4.5", "downloadCount": 7},
  {"title": "Dune", "author": "", "fileName": "Dune.epub", "fileExtension": ".EPUB", "filePath": "/lib/Dune.epub", "addedDate": "2024-01-03"},
  {"title": 1984, "author": "Duplicate", "filePath": "/lib/1984.pdf"},
  {"title": "No path"}
]`

func TestImportReader(t *testing.T) {
	store := newStore(t)
	imp := NewImporter(store, nil, storage.Config{}, "Unknown", zap.NewNop())

	report, err := imp.ImportReader(context.Background(), strings.NewReader(sampleDataset))
	require.NoError(t, err)
	assert.Equal(t, &ImportReport{Read: 4, Invalid: 1, Inserted: 2, Skipped: 1}, report)

	first, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", first.Author)
	assert.Equal(t, 4.5, first.Rating)
	assert.Equal(t, 7, first.DownloadCount)
	require.NotNil(t, first.Genre)
	assert.Equal(t, "Roman", *first.Genre)

	second, err := store.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", second.Author)
	assert.Equal(t, "epub", second.FileExtension)
	assert.Nil(t, second.Genre)

	again, err := imp.ImportReader(context.Background(), strings.NewReader(sampleDataset))
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Inserted)
	assert.Equal(t, int64(3), again.Skipped)
}

func TestImportReader_InvalidJSON(t *testing.T) {
	imp := NewImporter(newStore(t), nil, storage.Config{}, "Unknown", zap.NewNop())
	_, err := imp.ImportReader(context.Background(), strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestImportIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	imp := NewImporter(store, nil, storage.Config{}, "Unknown", zap.NewNop())

	report, err := imp.ImportIfEmpty(ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, report)

	path := filepath.Join(t.TempDir(), "ebooks_dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title": "A", "author": "X", "filePath": "/lib/a.pdf", "fileExtension": "pdf"},
		{"title": "B", "author": "Y", "filePath": "/lib/b.pdf", "fileExtension": "pdf"},
		{"title": "C", "author": "Y", "filePath": "/lib/c.epub", "fileExtension": "epub"}
	]`), 0o644))

	report, err = imp.ImportIfEmpty(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, int64(3), report.Inserted)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBooks)

	report, err = imp.ImportIfEmpty(ctx, path)
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestImportObject(t *testing.T) {
	cfg := storage.Config{Bucket: "library", Prefix: "datasets/"}

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "library", "datasets/books.json", minio.GetObjectOptions{}).
			Return(io.NopCloser(strings.NewReader(sampleDataset)), nil)

		imp := NewImporter(newStore(t), client, cfg, "Unknown", zap.NewNop())
		report, err := imp.ImportObject(context.Background(), "books.json")
		require.NoError(t, err)
		assert.Equal(t, int64(2), report.Inserted)
		client.AssertExpectations(t)
	})

	t.Run("GetFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "library", "datasets/books.json", mock.Anything).
			Return(nil, errors.New("no such key"))

		imp := NewImporter(newStore(t), client, cfg, "Unknown", zap.NewNop())
		_, err := imp.ImportObject(context.Background(), "books.json")
		assert.ErrorContains(t, err, "no such key")
	})

	t.Run("NotConfigured", func(t *testing.T) {
		imp := NewImporter(newStore(t), nil, cfg, "Unknown", zap.NewNop())
		_, err := imp.ImportObject(context.Background(), "books.json")
		assert.Error(t, err)
	})
}
