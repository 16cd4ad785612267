package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kowalski-site/kowalski/internal/export"
	"github.com/kowalski-site/kowalski/internal/progress"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static HTML",
	Long: `Writes every page as static HTML, with a menu/ variant showing the open
menu, and copies the site assets alongside.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cfg.Export.OutputDir = exportOutput
		}
		reg, catalog, err := buildRegistry(cfg)
		if err != nil {
			return err
		}

		ex := export.New(export.Options{
			Title:        cfg.Site.Title,
			HeaderHeight: cfg.Site.HeaderHeight,
			Transition:   cfg.Transition(),
			OutputDir:    cfg.Export.OutputDir,
			AssetsDir:    cfg.Export.AssetsDir,
			Assets:       cfg.Export.Assets,
			Reporter:     progress.NewReporter("Exporting site"),
		}, reg, catalog.NotFound())

		res, err := ex.Run()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d pages to %s (%d assets copied, %d unchanged)\n",
			res.Pages, cfg.Export.OutputDir, res.AssetsCopied, res.AssetsSkipped)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output directory (overrides export.output_dir)")
	rootCmd.AddCommand(exportCmd)
}
