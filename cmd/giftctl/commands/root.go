package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	noColor      bool
	taxonomyFile string
)

var rootCmd = &cobra.Command{
	Use:   "giftctl",
	Short: "Gift recommender command line tools",
	Long: `giftctl runs the recommendation pipeline locally: read the structured
context of an Arabic question, get suggestions from a catalog file, and tail
the events the service publishes to NATS.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&taxonomyFile, "taxonomy", "", "taxonomy YAML/JSON file (defaults to the built-in taxonomy)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
