// Package stats serves catalog aggregates: top authors, genres and totals per file type.
package stats
