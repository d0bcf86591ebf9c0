package cmd

import (
	"fmt"

	"ebook-library/feature/dataset"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cleanApply      bool
	cleanAggressive bool
	cleanPreview    int
	cleanYes        bool
)

// cleanCmd tidies titles and authors.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove bracketed segments and symbols from titles and authors",
	Long: `Previews, and with --apply writes, cleaned titles and authors. Bracketed segments
and math symbols are removed and whitespace is collapsed. --aggressive also removes
all punctuation. A field that would become empty is left unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		cleaner := dataset.NewCleaner(e.store, e.log)
		opts := dataset.CleanOptions{Aggressive: cleanAggressive, Preview: cleanPreview}

		report, err := cleaner.Run(ctx, opts)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
		if err := printJSON(report); err != nil {
			return err
		}

		if !cleanApply || report.Changed == 0 {
			return nil
		}
		if !confirm(fmt.Sprintf("%d book(s) will be renamed.", report.Changed), cleanYes) {
			e.log.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		opts.Apply = true
		applied, err := cleaner.Run(ctx, opts)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
		e.log.Info("Cleanup applied", zap.Int("changed", applied.Changed))
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanApply, "apply", false, "Write the changes")
	cleanCmd.Flags().BoolVar(&cleanAggressive, "aggressive", false, "Also remove punctuation and other symbols")
	cleanCmd.Flags().IntVar(&cleanPreview, "preview", 20, "Number of sample changes to print")
	cleanCmd.Flags().BoolVar(&cleanYes, "yes", false, "Apply without the confirmation prompt")
	RootCmd.AddCommand(cleanCmd)
}
