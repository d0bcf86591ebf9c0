// Package catalog persists e-book records in the books table and answers every query the API
// and maintenance commands need.
//
// The Store is the only code that issues SQL against the table. Filters are parameterized and
// LIKE patterns escape user-supplied wildcards with '!'. ApplyChanges is the single write path
// used by scan reconciliation: inserts and deletes commit together or not at all.
//
// # Usage
//
//	store := catalog.NewStore(db)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	books, page, err := store.List(ctx, catalog.Filter{FileType: "epub", Page: 2, Limit: 10})
package catalog
