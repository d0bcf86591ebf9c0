package checks

import (
	"fmt"

	"ebook-library/core/catalog"
	"ebook-library/core/database"

	"gorm.io/gorm"
)

// SchemaReport describes whether the books table carries every catalog column.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema compares the live books table with the columns the catalog uses.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := catalog.Book{}.TableName()
	missing, err := database.MissingColumns(db, table, catalog.Columns)
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}

	report := &SchemaReport{
		Table:          table,
		Matched:        len(missing) == 0,
		MissingColumns: missing,
		Status:         "ok",
	}
	if !report.Matched {
		report.Status = "error"
	}
	return report, nil
}
