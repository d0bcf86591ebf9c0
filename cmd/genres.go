package cmd

import (
	"fmt"

	"ebook-library/feature/genre"

	"github.com/spf13/cobra"
)

// genresCmd groups genre maintenance commands.
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Genre maintenance",
}

// genresMergeCmd folds alias genres into canonical ones.
var genresMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Rename alias genres to their canonical names",
	Long:  `Applies the built-in alias table (e.g. "Siir" -> "Şiir", "Gezi" -> "Seyahat") in one transaction.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		report, err := genre.Merge(ctx, e.store, nil)
		if err != nil {
			return fmt.Errorf("merge failed: %w", err)
		}
		return printJSON(report)
	},
}

func init() {
	genresCmd.AddCommand(genresMergeCmd)
	RootCmd.AddCommand(genresCmd)
}
