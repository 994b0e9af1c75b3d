package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wdbatch/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "wdbatch",
	Short: "Batch-script generation and residual tabulation for WD model fits",
	Long: "wdbatch maps a photometric catalog and a spectroscopy tree to SLURM\n" +
		"batch scripts for fit_WDmodel, and tabulates observed vs. model\nphotometry for objects already fitted.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logLevel, logFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(residualsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
