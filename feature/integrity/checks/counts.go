package checks

import "sort"

// ExtensionCount compares files on disk and catalog records for one extension.
type ExtensionCount struct {
	Extension  string `json:"extension"`
	OnDisk     int64  `json:"on_disk"`
	InCatalog  int64  `json:"in_catalog"`
	Difference int64  `json:"difference"` // on disk minus in catalog
}

// CountReport is the per-extension comparison plus totals.
type CountReport struct {
	Extensions []ExtensionCount `json:"extensions"`
	Total      ExtensionCount   `json:"total"`
	Matched    bool             `json:"matched"`
}

// CompareCounts merges both tallies. Extensions are sorted by name.
func CompareCounts(disk, db map[string]int64) *CountReport {
	names := make(map[string]struct{}, len(disk)+len(db))
	for ext := range disk {
		names[ext] = struct{}{}
	}
	for ext := range db {
		names[ext] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for ext := range names {
		sorted = append(sorted, ext)
	}
	sort.Strings(sorted)

	report := &CountReport{
		Extensions: make([]ExtensionCount, 0, len(sorted)),
		Total:      ExtensionCount{Extension: "total"},
		Matched:    true,
	}
	for _, ext := range sorted {
		row := ExtensionCount{
			Extension:  ext,
			OnDisk:     disk[ext],
			InCatalog:  db[ext],
			Difference: disk[ext] - db[ext],
		}
		if row.Difference != 0 {
			report.Matched = false
		}
		report.Extensions = append(report.Extensions, row)
		report.Total.OnDisk += row.OnDisk
		report.Total.InCatalog += row.InCatalog
	}
	report.Total.Difference = report.Total.OnDisk - report.Total.InCatalog
	return report
}
