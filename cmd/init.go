package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kowalski-site/kowalski/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kowalski configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes it to the config file (default .kowalski.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
