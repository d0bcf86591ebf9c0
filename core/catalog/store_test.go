package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ebook-library/core/apperrors"
	"ebook-library/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: database.MemoryName})
	require.NoError(t, err)
	store := NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func book(title, author, ext, path string) Book {
	return Book{
		Title:         title,
		Author:        author,
		FileName:      title + "." + ext,
		FileExtension: ext,
		FilePath:      path,
		AddedDate:     "2024-01-01",
	}
}

func TestStore_ListPagination(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var books []Book
	for i := 1; i <= 25; i++ {
		books = append(books, book(fmt.Sprintf("Book %02d", i), "Author", "epub", fmt.Sprintf("/lib/book%02d.epub", i)))
	}
	books = append(books, book("Another", "Author", "pdf", "/lib/another.pdf"))
	_, err := store.Import(ctx, books)
	require.NoError(t, err)

	got, page, err := store.List(ctx, Filter{FileType: "epub", Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	require.Len(t, got, 10)
	assert.Equal(t, "Book 11", got[0].Title)
	assert.Equal(t, "Book 20", got[9].Title)
}

func TestStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	fiction := "Science Fiction"
	b1 := book("1984", "Orwell, George", "pdf", "/lib/Orwell, George - 1984.pdf")
	b1.Genre = &fiction
	b2 := book("100% Pure", "Someone", "epub", "/lib/pure.epub")
	b3 := book("Dune", "Herbert", "epub", "/lib/scifi/dune.epub")
	b4 := book("Çalıkuşu", "Reşat Nuri Güntekin", "pdf", "/lib/tr/Reşat Nuri Güntekin - Çalıkuşu.pdf")
	b5 := book("İnce Memed", "Yaşar Kemal", "pdf", "/lib/tr/Yaşar Kemal - İnce Memed.pdf")
	_, err := store.Import(ctx, []Book{b1, b2, b3, b4, b5})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"SearchTitleCaseInsensitive", Filter{Search: "dUNE"}, []string{"Dune"}},
		{"SearchPath", Filter{Search: "/scifi/"}, []string{"Dune"}},
		{"SearchEscapesPercent", Filter{Search: "100%"}, []string{"100% Pure"}},
		{"PercentIsLiteral", Filter{Search: "%"}, []string{"100% Pure"}},
		{"UnderscoreIsLiteral", Filter{Search: "_"}, []string{}},
		{"Genre", Filter{Genre: "fiction"}, []string{"1984"}},
		{"Author", Filter{Author: "orwell"}, []string{"1984"}},
		{"FileType", Filter{FileType: "epub"}, []string{"100% Pure", "Dune"}},
		{"Combined", Filter{FileType: "epub", Search: "dune"}, []string{"Dune"}},
		{"SearchNonASCIIExactCase", Filter{Search: "Çalıkuşu"}, []string{"Çalıkuşu"}},
		{"SearchDottedCapitalI", Filter{Search: "İnce"}, []string{"İnce Memed"}},
		{"SearchNonASCIIAuthor", Filter{Search: "Reşat Nuri"}, []string{"Çalıkuşu"}},
		{"SearchASCIIFoldsBesideNonASCII", Filter{Search: "memed"}, []string{"İnce Memed"}},
		{"SearchDecomposedInput", Filter{Search: norm.NFD.String("Çalıkuşu")}, []string{"Çalıkuşu"}},
		{"AuthorNonASCII", Filter{Author: "Yaşar Kemal"}, []string{"İnce Memed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, err := store.List(ctx, tt.filter)
			require.NoError(t, err)
			titles := []string{}
			for _, b := range got {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.want, titles)
			assert.Equal(t, int64(len(tt.want)), page.Total)
		})
	}
}

func TestStore_GetAndUpdateGenre(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Import(ctx, []Book{book("Dune", "Herbert", "epub", "/lib/dune.epub")})
	require.NoError(t, err)

	b, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
	assert.Nil(t, b.Genre)

	_, err = store.Get(ctx, 99)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

	require.NoError(t, store.UpdateGenre(ctx, 1, StringPtr("Science Fiction"), StringPtr("Desert planet")))
	b, err = store.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, b.Genre)
	assert.Equal(t, "Science Fiction", *b.Genre)
	assert.Equal(t, "Desert planet", *b.Description)

	require.NoError(t, store.UpdateGenre(ctx, 1, StringPtr("Classic"), nil))
	b, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Classic", *b.Genre)
	assert.Nil(t, b.Description)

	err = store.UpdateGenre(ctx, 42, StringPtr("x"), nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestStore_AggregatesAfterImport(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	history := "History"
	b1 := book("A", "Alpha", "pdf", "/lib/a.pdf")
	b1.Genre = &history
	b2 := book("B", "Alpha", "epub", "/lib/b.epub")
	b2.Genre = &history
	b3 := book("C", "Beta", "pdf", "/lib/c.pdf")
	n, err := store.Import(ctx, []Book{b1, b2, b3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBooks)
	assert.Equal(t, int64(2), stats.TotalAuthors)
	assert.Equal(t, []FileTypeCount{{"pdf", 2}, {"epub", 1}}, stats.FileTypes)

	authors, err := store.Authors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []AuthorCount{{"Alpha", 2}, {"Beta", 1}}, authors)

	genres, err := store.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []GenreCount{{"History", 2}}, genres)
}

func TestStore_ImportSkipsDuplicatePaths(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	n, err := store.Import(ctx, []Book{book("A", "X", "pdf", "/lib/a.pdf")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Import(ctx, []Book{book("A again", "X", "pdf", "/lib/a.pdf"), book("B", "X", "pdf", "/lib/b.pdf")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStore_ApplyChanges(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Import(ctx, []Book{book("Old", "X", "pdf", "/lib/old.pdf"), book("Keep", "X", "pdf", "/lib/keep.pdf")})
	require.NoError(t, err)

	err = store.ApplyChanges(ctx, []Book{book("New", "X", "epub", "/lib/new.epub")}, []uint{1})
	require.NoError(t, err)

	refs, err := store.Paths(ctx)
	require.NoError(t, err)
	paths := []string{}
	for _, r := range refs {
		paths = append(paths, r.FilePath)
	}
	assert.ElementsMatch(t, []string{"/lib/keep.pdf", "/lib/new.epub"}, paths)
}

func TestStore_ApplyChangesRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Import(ctx, []Book{book("Old", "X", "pdf", "/lib/old.pdf")})
	require.NoError(t, err)

	// Fail every delete so the insert that ran first must be rolled back.
	require.NoError(t, store.DB().Callback().Delete().Before("gorm:delete").Register("test:fail_delete", func(db *gorm.DB) {
		_ = db.AddError(errors.New("injected delete failure"))
	}))

	err = store.ApplyChanges(ctx, []Book{book("New", "X", "pdf", "/lib/new.pdf")}, []uint{1})
	require.Error(t, err)

	refs, err := store.Paths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PathRef{{ID: 1, FilePath: "/lib/old.pdf"}}, refs)
}

func TestStore_CountByExtensionIsBoundarySafe(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Import(ctx, []Book{
		book("A", "X", "pdf", "/data/books/a.pdf"),
		book("B", "X", "epub", "/data/books/sub/b.epub"),
		book("C", "X", "pdf", "/data/books2/c.pdf"),
		book("D", "X", "pdf", "/data/books_x/d.pdf"),
	})
	require.NoError(t, err)

	counts, err := store.CountByExtension(ctx, "/data/books")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"pdf": 1, "epub": 1}, counts)
}

func TestStore_GenreMaintenance(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	scifi := "Sci-Fi"
	b1 := book("A", "X", "pdf", "/lib/a.pdf")
	b1.Genre = &scifi
	b2 := book("B", "X", "pdf", "/lib/b.pdf")
	_, err := store.Import(ctx, []Book{b1, b2})
	require.NoError(t, err)

	pending, err := store.Unclassified(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "B", pending[0].Title)

	require.NoError(t, store.SetGenre(ctx, pending[0].ID, "History"))

	changed, err := store.RenameGenres(ctx, map[string]string{"Sci-Fi": "Science Fiction"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed["Sci-Fi"])

	genres, err := store.Genres(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []GenreCount{{"History", 1}, {"Science Fiction", 1}}, genres)

	require.NoError(t, store.UpdateNames(ctx, []NameUpdate{{ID: 1, Title: "Clean", Author: "Y"}}))
	b, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Clean", b.Title)
	assert.Equal(t, "Y", b.Author)

	var seen int
	require.NoError(t, store.Each(ctx, 1, func(batch []Book) error {
		seen += len(batch)
		return nil
	}))
	assert.Equal(t, 2, seen)
}
