package cmd

import (
	"fmt"

	"ebook-library/feature/genre"

	"github.com/spf13/cobra"
)

var (
	classifyLimit     int
	classifyDryRun    bool
	classifyRulesOnly bool
)

// classifyCmd assigns genres to books that have none.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Assign genres to unclassified books",
	Long: `Classifies books without a genre using the author and keyword rules first. The rest
go to the remote classifier in batches when classifier.api_key is set.

Examples:
  # Try five books without writing
  classify --limit 5 --dry-run

  # Free pass only
  classify --rules-only`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		var remote genre.BatchClassifier
		if rc := genre.NewRemoteClassifier(e.cfg.Classifier); rc != nil {
			remote = rc
		}

		runner := genre.NewRunner(e.store, remote, e.cfg.Classifier, nil, e.log)
		report, err := runner.Run(ctx, genre.RunOptions{
			Limit:     classifyLimit,
			DryRun:    classifyDryRun,
			RulesOnly: classifyRulesOnly,
		})
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}
		if !classifyDryRun {
			report.Assignments = nil
		}
		return printJSON(report)
	},
}

func init() {
	classifyCmd.Flags().IntVar(&classifyLimit, "limit", 0, "Maximum number of books to consider (0 = all)")
	classifyCmd.Flags().BoolVar(&classifyDryRun, "dry-run", false, "Print assignments without writing them")
	classifyCmd.Flags().BoolVar(&classifyRulesOnly, "rules-only", false, "Skip the remote classifier")
	RootCmd.AddCommand(classifyCmd)
}
