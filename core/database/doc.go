// Package database opens the catalog database and inspects its schema.
//
// Connect wraps GORM and picks the dialector from the configuration: SQLite (the default,
// a single file next to the binary or ":memory:" for tests) or MySQL. SQLite file databases
// are switched to WAL mode with a busy timeout; in-memory databases are pinned to a single
// pooled connection so every query sees the same data.
//
// # Schema Inspection
//
// GetTableColumns returns normalized column definitions (PRAGMA table_info on SQLite,
// SHOW COLUMNS on MySQL). MissingColumns is used by the integrity report to verify the
// books table carries every column the catalog expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "books", []string{"id", "file_path"})
package database
