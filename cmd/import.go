package cmd

import (
	"fmt"

	"ebook-library/feature/dataset"

	"github.com/spf13/cobra"
)

var importFromBucket bool

// importCmd loads a JSON dataset into the catalog.
var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a JSON dataset into the catalog",
	Long: `Inserts every book from a JSON dataset whose file path is not cataloged yet.
The path defaults to library.dataset_path. With --bucket the path is an object
name under storage.prefix in the configured bucket.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		client, err := e.storageClient()
		if err != nil {
			return err
		}
		imp := dataset.NewImporter(e.store, client, e.cfg.Storage, e.cfg.Library.UnknownAuthor, e.log)

		path := e.cfg.Library.DatasetPath
		if len(args) == 1 {
			path = args[0]
		}

		var report *dataset.ImportReport
		if importFromBucket {
			report, err = imp.ImportObject(ctx, path)
		} else {
			report, err = imp.ImportFile(ctx, path)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		return printJSON(report)
	},
}

func init() {
	importCmd.Flags().BoolVar(&importFromBucket, "bucket", false, "Read the dataset from the storage bucket")
	RootCmd.AddCommand(importCmd)
}
