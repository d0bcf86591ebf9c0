package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"
	"ebook-library/core/scanner"
)

// DateLayout is the stored addedDate format.
const DateLayout = "2006-01-02"

// Contains reports whether path equals root or lies below it. "/data/books" does not
// contain "/data/books2/x.pdf".
func Contains(root, path string) bool {
	root = filepath.Clean(root)
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

// BuildPlan diffs a scan against the catalog. It does NOT execute anything; use ApplyPlan for that.
func BuildPlan(scan *scanner.Result, existing []catalog.PathRef, opts Options) *Plan {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	exists := opts.Exists
	if exists == nil {
		exists = func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		}
	}
	addedDate := now().UTC().Format(DateLayout)

	existingPaths := make(map[string]struct{}, len(existing))
	for _, ref := range existing {
		existingPaths[ref.FilePath] = struct{}{}
	}
	foundPaths := make(map[string]struct{}, len(scan.Files))
	for _, f := range scan.Files {
		foundPaths[f.FilePath] = struct{}{}
	}

	plan := &Plan{
		Root:       scan.Root,
		Added:      []catalog.Book{},
		RemovedIDs: []uint{},
		Actions:    []Action{},
	}

	for _, f := range scan.Files {
		if _, ok := existingPaths[f.FilePath]; ok {
			continue
		}
		// Guard against the same path listed twice.
		existingPaths[f.FilePath] = struct{}{}

		title, author := ParseName(f.FileName, opts.UnknownAuthor)
		plan.Added = append(plan.Added, catalog.Book{
			Title:         title,
			Author:        author,
			FileName:      f.FileName,
			FileExtension: f.FileExtension,
			FilePath:      f.FilePath,
			AddedDate:     addedDate,
		})
		plan.Actions = append(plan.Actions, Action{Type: ActionInsert, Key: f.FilePath, Reason: "found on disk, missing in catalog"})
	}

	for _, ref := range existing {
		if !Contains(scan.Root, ref.FilePath) {
			continue
		}
		plan.Summary.Existing++
		if _, ok := foundPaths[ref.FilePath]; ok {
			continue
		}
		if scan.Truncated && exists(ref.FilePath) {
			continue
		}
		plan.RemovedIDs = append(plan.RemovedIDs, ref.ID)
		plan.Actions = append(plan.Actions, Action{Type: ActionDelete, Key: ref.FilePath, Reason: "missing on disk"})
	}

	plan.Summary.TotalFound = len(scan.Files)
	plan.Summary.Added = len(plan.Added)
	plan.Summary.Removed = len(plan.RemovedIDs)
	plan.Summary.Truncated = scan.Truncated
	return plan
}

// ApplyPlan writes the plan through applier in one transaction.
// Returns the number of actions executed. Requires opts.Confirmed=true and opts.DryRun=false.
func ApplyPlan(ctx context.Context, applier Applier, plan *Plan, opts Options) (int, error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if len(plan.Added) == 0 && len(plan.RemovedIDs) == 0 {
		return 0, nil
	}
	if err := applier.ApplyChanges(ctx, plan.Added, plan.RemovedIDs); err != nil {
		return 0, apperrors.Internal("Database update failed", err)
	}
	return len(plan.Added) + len(plan.RemovedIDs), nil
}
