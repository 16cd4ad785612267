package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kowalski-site/kowalski/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the site in the terminal",
	Long:  `Opens a terminal preview of the site. Press m for the menu, arrows and enter to switch pages, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, _, err := buildRegistry(cfg)
		if err != nil {
			return err
		}
		return preview.Run(preview.Options{
			Title:      cfg.Site.Title,
			Registry:   reg,
			PressDelay: cfg.PressDelay(),
		})
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
