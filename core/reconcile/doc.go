// Package reconcile keeps the catalog in step with the files on disk.
//
// A reconciliation has two phases. BuildPlan compares the paths a scan found with the
// paths already cataloged: new paths become inserts (title and author parsed from the file
// name) and cataloged paths under the scanned root that the scan no longer sees become
// deletes. ApplyPlan then hands the whole plan to an Applier, which commits it in a single
// transaction.
//
// Paths outside the scanned root are never touched, and containment is checked on path
// boundaries. When a scan was truncated by the file cap, a missing path is only deleted
// after confirming the file is really gone.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(scanner.New(cfg.Scanner, log), store, log)
//
//	// Preview
//	plan, err := engine.Plan(ctx, "/data/books", reconcile.Options{})
//
//	// Scan and apply
//	_, result, err := engine.Run(ctx, "/data/books", reconcile.Options{UnknownAuthor: "Bilinmiyor"})
package reconcile
