package cmd

import (
	"fmt"

	"ebook-library/core/reconcile"
	"ebook-library/core/scanner"
	"ebook-library/feature/scan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunScan bool
	yesScan    bool
)

// scanCmd reconciles the catalog with a directory.
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory and reconcile the catalog with it",
	Long: `Walks the directory, plans inserts for new book files and deletes for cataloged
files under it that are gone, prints the plan and applies it after confirmation.

Examples:
  # Show what would change
  scan /mnt/books --dry-run

  # Apply without prompting
  scan /mnt/books --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&dryRunScan, "dry-run", false, "Only print the plan")
	scanCmd.Flags().BoolVar(&yesScan, "yes", false, "Apply without the confirmation prompt")
	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	sc := scanner.New(e.cfg.Scanner, e.log)
	engine := reconcile.NewEngine(sc, e.store, e.log)

	plan, err := engine.Plan(ctx, args[0], reconcile.Options{UnknownAuthor: e.cfg.Library.UnknownAuthor})
	if err != nil {
		return fmt.Errorf("failed to plan scan: %w", err)
	}
	printPlan(e.log, plan)

	if dryRunScan {
		e.log.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		e.log.Info("Catalog already matches the directory.")
		return nil
	}
	if !confirm(fmt.Sprintf("%d insert(s) and %d delete(s) will be applied.", plan.Summary.Added, plan.Summary.Removed), yesScan) {
		e.log.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// Apply the plan that was confirmed, not a fresh one.
	svc := scan.NewService(engine, e.cfg.Library.UnknownAuthor, nil, e.log)
	result, err := svc.Apply(ctx, plan, scan.ModeCLI)
	if err != nil {
		return fmt.Errorf("failed to apply scan: %w", err)
	}

	e.log.Info("Scan applied",
		zap.Int("added", result.Added),
		zap.Int("removed", result.Removed),
		zap.Int("total_found", result.TotalFound),
	)
	return nil
}

// printPlan logs the summary and a sample of the planned actions.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary
	l.Info("Scan plan",
		zap.String("root", plan.Root),
		zap.Int("total_found", s.TotalFound),
		zap.Int("existing", s.Existing),
		zap.Int("added", s.Added),
		zap.Int("removed", s.Removed),
		zap.Bool("truncated", s.Truncated),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}
