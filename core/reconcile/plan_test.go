package reconcile

import (
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"
	"ebook-library/core/scanner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC) }

func scanOf(root string, truncated bool, paths ...string) *scanner.Result {
	res := &scanner.Result{Root: root, Truncated: truncated}
	for _, p := range paths {
		res.Files = append(res.Files, scanner.File{FilePath: p, FileName: path.Base(p), FileExtension: "pdf"})
	}
	return res
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("/data/books", "/data/books/a.pdf"))
	assert.True(t, Contains("/data/books/", "/data/books/sub/a.pdf"))
	assert.True(t, Contains("/data/books", "/data/books"))
	assert.False(t, Contains("/data/books", "/data/books2/x.pdf"))
	assert.False(t, Contains("/data/books", "/data/book"))
	assert.True(t, Contains("/", "/anything.pdf"))
}

func TestBuildPlan(t *testing.T) {
	scan := scanOf("/data/books", false,
		"/data/books/Orwell, George - 1984.pdf",
		"/data/books/keep.pdf",
	)
	existing := []catalog.PathRef{
		{ID: 1, FilePath: "/data/books/keep.pdf"},
		{ID: 2, FilePath: "/data/books/gone.pdf"},
		{ID: 3, FilePath: "/data/books2/other.pdf"},
		{ID: 4, FilePath: "/elsewhere/x.pdf"},
	}

	plan := BuildPlan(scan, existing, Options{Now: fixedNow})

	require.Len(t, plan.Added, 1)
	added := plan.Added[0]
	assert.Equal(t, "1984", added.Title)
	assert.Equal(t, "Orwell, George", added.Author)
	assert.Equal(t, "Orwell, George - 1984.pdf", added.FileName)
	assert.Equal(t, "pdf", added.FileExtension)
	assert.Equal(t, "2024-03-09", added.AddedDate)

	assert.Equal(t, []uint{2}, plan.RemovedIDs)
	assert.Equal(t, PlanSummary{TotalFound: 2, Existing: 2, Added: 1, Removed: 1}, plan.Summary)

	require.Len(t, plan.Actions, 2)
	assert.Equal(t, ActionInsert, plan.Actions[0].Type)
	assert.Equal(t, ActionDelete, plan.Actions[1].Type)
	assert.Equal(t, "/data/books/gone.pdf", plan.Actions[1].Key)
}

func TestBuildPlan_NoChanges(t *testing.T) {
	scan := scanOf("/lib", false, "/lib/a.pdf")
	plan := BuildPlan(scan, []catalog.PathRef{{ID: 1, FilePath: "/lib/a.pdf"}}, Options{})

	assert.Empty(t, plan.Added)
	assert.Empty(t, plan.RemovedIDs)
	assert.Empty(t, plan.Actions)
}

func TestBuildPlan_TruncatedKeepsExistingFiles(t *testing.T) {
	scan := scanOf("/lib", true, "/lib/a.pdf")
	existing := []catalog.PathRef{
		{ID: 1, FilePath: "/lib/a.pdf"},
		{ID: 2, FilePath: "/lib/beyond-cap.pdf"},
		{ID: 3, FilePath: "/lib/deleted.pdf"},
	}
	onDisk := map[string]bool{"/lib/a.pdf": true, "/lib/beyond-cap.pdf": true}

	plan := BuildPlan(scan, existing, Options{Exists: func(p string) bool { return onDisk[p] }})

	assert.Equal(t, []uint{3}, plan.RemovedIDs)
	assert.True(t, plan.Summary.Truncated)
}

type mockApplier struct {
	mock.Mock
}

func (m *mockApplier) ApplyChanges(ctx context.Context, added []catalog.Book, removedIDs []uint) error {
	args := m.Called(ctx, added, removedIDs)
	return args.Error(0)
}

func TestApplyPlan(t *testing.T) {
	plan := &Plan{
		Added:      []catalog.Book{{FilePath: "/lib/new.pdf"}},
		RemovedIDs: []uint{7},
	}

	t.Run("NotConfirmed", func(t *testing.T) {
		applier := new(mockApplier)
		n, err := ApplyPlan(context.Background(), applier, plan, Options{})
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
		applier.AssertNotCalled(t, "ApplyChanges", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DryRun", func(t *testing.T) {
		applier := new(mockApplier)
		n, err := ApplyPlan(context.Background(), applier, plan, Options{Confirmed: true, DryRun: true})
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
		applier.AssertNotCalled(t, "ApplyChanges", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Applied", func(t *testing.T) {
		applier := new(mockApplier)
		applier.On("ApplyChanges", mock.Anything, plan.Added, plan.RemovedIDs).Return(nil)
		n, err := ApplyPlan(context.Background(), applier, plan, Options{Confirmed: true})
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		applier.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		applier := new(mockApplier)
		applier.On("ApplyChanges", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("locked"))
		_, err := ApplyPlan(context.Background(), applier, plan, Options{Confirmed: true})
		assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
	})
}
