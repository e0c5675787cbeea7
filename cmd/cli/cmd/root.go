// Package cmd provides the CLI commands for talent-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"talent-quote/internal/config"
	"talent-quote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "talent-quote",
	Short: "Compute recruiting service proposals",
	Long: `talent-quote is a deterministic pricing engine for recruiting
service bundles.

It prices a selection of business units, delivery modalities, addons,
and assessments into an itemized, auditable proposal with a billing
milestone schedule.

Examples:
  talent-quote quote selection.json
  talent-quote quote --format json selection.json
  talent-quote quote --compare ai,hybrid selection.json
  talent-quote catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.talent-quote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("talent-quote version 0.1.0")
	},
}
