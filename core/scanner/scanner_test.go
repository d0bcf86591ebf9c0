package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ebook-library/core/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func relPaths(t *testing.T, root string, res *Result) []string {
	t.Helper()
	out := []string{}
	for _, f := range res.Files {
		rel, err := filepath.Rel(root, f.FilePath)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestScan_FiltersAndOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"a.pdf",
		"b/c.EPUB",
		"b/d.jpg",
		"b/e/f.mobi",
		"g.txt",
		".hidden.pdf",
		".git/x.pdf",
		"node_modules/pkg/readme.txt",
		"$RECYCLE.BIN/old.pdf",
		"System Volume Information/sys.pdf",
		"noext",
	)

	s := New(Config{}, zap.NewNop())
	res, err := s.Scan(context.Background(), root)
	require.NoError(t, err)

	// Pre-order: the contents of b are visited before g.txt.
	assert.Equal(t, []string{"a.pdf", "b/c.EPUB", "b/e/f.mobi", "g.txt"}, relPaths(t, root, res))
	assert.False(t, res.Truncated)

	byName := map[string]File{}
	for _, f := range res.Files {
		byName[f.FileName] = f
		assert.True(t, filepath.IsAbs(f.FilePath))
		assert.Equal(t, int64(1), f.Size)
	}
	assert.Equal(t, "epub", byName["c.EPUB"].FileExtension)
	assert.Equal(t, "pdf", byName["a.pdf"].FileExtension)
}

func TestScan_UnsupportedExtensionsNeverReturned(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.jpg", "b.png", "c.pdf.bak", "d.zip", "e.cbz")

	res, err := New(Config{}, zap.NewNop()).Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, res.Files, 1)
	assert.Equal(t, "e.cbz", res.Files[0].FileName)
	for _, f := range res.Files {
		assert.Contains(t, DefaultExtensions, f.FileExtension)
	}
}

func TestScan_CapIsExact(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "1.pdf", "2.pdf", "3.pdf", "4.pdf", "5.pdf")

	s := New(Config{MaxFiles: 3}, zap.NewNop())
	res, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Len(t, res.Files, 3)
	assert.True(t, res.Truncated)
	assert.Equal(t, []string{"1.pdf", "2.pdf", "3.pdf"}, relPaths(t, root, res))

	// Exactly at the cap is not a truncation.
	s = New(Config{MaxFiles: 5}, zap.NewNop())
	res, err = s.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Len(t, res.Files, 5)
	assert.False(t, res.Truncated)
}

func TestScan_CustomConfig(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "keep/a.djvu", "skip/b.djvu", "c.pdf")

	s := New(Config{Extensions: []string{".DJVU"}, ExcludedDirs: []string{"skip"}}, zap.NewNop())
	res, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep/a.djvu"}, relPaths(t, root, res))
	assert.True(t, s.Supports("djvu"))
	assert.False(t, s.Supports("pdf"))
}

func TestScan_SymlinkCycle(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a/book.pdf")
	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res, err := New(Config{}, zap.NewNop()).Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/book.pdf"}, relPaths(t, root, res))
}

func TestScan_UnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any directory")
	}
	root := t.TempDir()
	writeFiles(t, root, "a.pdf", "locked/hidden.pdf", "z/b.epub")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	res, err := New(Config{}, zap.NewNop()).Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "z/b.epub"}, relPaths(t, root, res))
	assert.Equal(t, 1, res.DirsSkipped)
	assert.False(t, res.Truncated)
}

func TestScan_DanglingSymlinkIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.pdf", "c.pdf")
	if err := os.Symlink(filepath.Join(root, "missing.pdf"), filepath.Join(root, "b.pdf")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res, err := New(Config{}, zap.NewNop()).Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "c.pdf"}, relPaths(t, root, res))
	assert.Equal(t, 0, res.DirsSkipped)
}

func TestScan_InvalidRoot(t *testing.T) {
	s := New(Config{}, zap.NewNop())

	_, err := s.Scan(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))

	_, err = s.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))

	file := filepath.Join(t.TempDir(), "file.pdf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = s.Scan(context.Background(), file)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{}, zap.NewNop()).Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountByExtension(t *testing.T) {
	counts := CountByExtension([]File{{FileExtension: "pdf"}, {FileExtension: "pdf"}, {FileExtension: "epub"}})
	assert.Equal(t, map[string]int64{"pdf": 2, "epub": 1}, counts)
}
