package reconcile

import (
	"context"
	"time"

	"ebook-library/core/catalog"
)

// ActionType represents the type of catalog mutation.
type ActionType string

const (
	// ActionInsert adds a record for a file found on disk.
	ActionInsert ActionType = "insert"
	// ActionDelete removes a record whose file is gone.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the file path the action concerns.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan is the difference between a scan and the catalog.
type Plan struct {
	// Root is the scanned directory.
	Root string `json:"root"`

	// Added holds the records to insert.
	Added []catalog.Book `json:"-"`

	// RemovedIDs holds the ids of records to delete.
	RemovedIDs []uint `json:"-"`

	// Actions lists every mutation for display.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalFound is the number of supported files the scan returned.
	TotalFound int `json:"totalFound"`

	// Existing is the number of catalog records under the root.
	Existing int `json:"existing"`

	// Added counts planned inserts.
	Added int `json:"addedCount"`

	// Removed counts planned deletes.
	Removed int `json:"removedCount"`

	// Truncated reports that the scan hit its file cap.
	Truncated bool `json:"truncated"`
}

// Options controls how plans are built and applied.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller accepted the plan.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool

	// UnknownAuthor is stored when a file name carries no author.
	UnknownAuthor string

	// Now supplies the insertion date; defaults to time.Now.
	Now func() time.Time

	// Exists reports whether a path is still on disk. It is consulted only for
	// truncated scans, where absence from the scan does not prove deletion.
	Exists func(path string) bool
}

// Applier persists a plan atomically.
type Applier interface {
	ApplyChanges(ctx context.Context, added []catalog.Book, removedIDs []uint) error
}

// Catalog is the slice of the store reconciliation needs.
type Catalog interface {
	Applier
	Paths(ctx context.Context) ([]catalog.PathRef, error)
}

// Result is what a scan reports to callers.
type Result struct {
	Added      int  `json:"addedCount"`
	Removed    int  `json:"removedCount"`
	TotalFound int  `json:"totalFound"`
	Truncated  bool `json:"truncated"`
	DryRun     bool `json:"dryRun"`
}
