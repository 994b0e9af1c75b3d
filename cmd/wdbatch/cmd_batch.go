package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wdbatch/internal/batch"
	"wdbatch/internal/catalog"
	"wdbatch/internal/logging"
)

var (
	batchPhotFile string
	batchSpecRoot string
	batchScripts  string
	batchConfig   string
	batchWorkers  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate one SLURM batch script per spectrum file",
	Long: "Reads the photometric catalog, globs each object's spectrum files\n" +
		"under the spectroscopy root, and writes one fit_WDmodel batch script\n" +
		"per file. Spectrum files no catalog object claims get ignore-photometry\n" +
		"scripts under a separate root.",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.Read(batchPhotFile)
		if err != nil {
			return err
		}

		matched := batch.DefaultParams()
		orphan := batch.OrphanParams()
		scheduler := batch.DefaultScheduler()
		if batchConfig != "" {
			cfg, err := batch.LoadConfig(batchConfig)
			if err != nil {
				return err
			}
			cfg.Apply(&matched, &orphan)
			scheduler = cfg.Scheduler
		}

		gen := &batch.Generator{
			SpecRoot:    batchSpecRoot,
			ScriptsRoot: batchScripts,
			PhotFile:    batchPhotFile,
			Matched:     matched,
			Orphan:      orphan,
			Header:      scheduler.HeaderLines(),
			Workers:     batchWorkers,
			Progress:    cmd.OutOrStdout(),
			Log:         logging.New("batch"),
		}
		sum, err := gen.Generate(entries)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d matched and %d orphan scripts under %s\n",
			sum.Matched, sum.Orphans, batchScripts)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchPhotFile, "photfile", "data/photometry/WDphot_C22.dat", "Photometric catalog file")
	batchCmd.Flags().StringVar(&batchSpecRoot, "specroot", "data/spectroscopy", "Root of the spectroscopy tree")
	batchCmd.Flags().StringVar(&batchScripts, "scripts", "scripts", "Root directory for generated scripts")
	batchCmd.Flags().StringVar(&batchConfig, "config", "", "Optional YAML file overriding fit parameters and scheduler directives")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 1, "Matched-pass parallelism")
}
