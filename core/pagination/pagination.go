// Package pagination normalizes page/limit parameters and computes page counts.
package pagination

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Metadata is the pagination block returned with book lists.
type Metadata struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Normalize applies defaults: page < 1 becomes 1 and limit < 1 becomes DefaultLimit.
// There is no upper bound on limit.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset returns the row offset for a normalized page and limit.
func Offset(page, limit int) int {
	page, limit = Normalize(page, limit)
	return (page - 1) * limit
}

// Calculate builds the metadata for total matching rows.
func Calculate(total int64, page, limit int) Metadata {
	page, limit = Normalize(page, limit)
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 0 {
		pages = 0
	}
	return Metadata{Page: page, Limit: limit, Total: total, Pages: pages}
}
