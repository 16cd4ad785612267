package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kowalski",
	Short: "Serve, preview and export the Kowalski site",
	Long: `Kowalski renders a small marketing site (Home, Shop, Gallery, Contact)
with a slide-out menu. Serve it over HTTP, try it in the terminal, or
export it as static HTML.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".kowalski.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
