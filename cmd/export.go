package cmd

import (
	"fmt"

	"ebook-library/feature/dataset"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat   string
	exportToBucket bool
)

// exportCmd writes the catalog to a file or the bucket.
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the catalog as JSON or CSV",
	Long: `Writes every book to path (default ebooks_dataset.<format>). With --bucket the
export is uploaded to the configured bucket under storage.prefix instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		format, err := dataset.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		client, err := e.storageClient()
		if err != nil {
			return err
		}
		exp := dataset.NewExporter(e.store, client, e.cfg.Storage, e.log)

		path := fmt.Sprintf("ebooks_dataset.%s", format)
		if len(args) == 1 {
			path = args[0]
		}

		if exportToBucket {
			object, n, err := exp.ExportObject(ctx, path, format)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			e.log.Info("Export uploaded", zap.String("object", object), zap.Int("books", n))
			return nil
		}

		if _, err := exp.ExportFile(ctx, path, format); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json or csv")
	exportCmd.Flags().BoolVar(&exportToBucket, "bucket", false, "Upload to the storage bucket")
	RootCmd.AddCommand(exportCmd)
}
