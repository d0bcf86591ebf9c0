package cmd

import (
	"ebook-library/core/scanner"
	"ebook-library/feature/integrity"

	"github.com/spf13/cobra"
)

// integrityCmd compares a directory with the catalog without writing anything.
var integrityCmd = &cobra.Command{
	Use:   "integrity [dir]",
	Short: "Compare a directory with the catalog",
	Long: `Prints per-extension file counts on disk and in the catalog, the pending scan plan
and the books table column check as JSON. Without a directory only the schema is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		svc := integrity.NewService(scanner.New(e.cfg.Scanner, e.log), e.store, e.cfg.Library.UnknownAuthor, e.log)
		if len(args) == 0 {
			report, err := svc.CheckSchema()
			if err != nil {
				return err
			}
			return printJSON(report)
		}

		report, err := svc.CheckRoot(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}
