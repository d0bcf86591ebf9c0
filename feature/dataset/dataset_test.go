package dataset

import (
	"context"
	"testing"

	"ebook-library/core/catalog"
	"ebook-library/core/database"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: database.MemoryName})
	require.NoError(t, err)
	store := catalog.NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func seed(t *testing.T, store *catalog.Store, books ...catalog.Book) {
	t.Helper()
	_, err := store.Import(context.Background(), books)
	require.NoError(t, err)
}
