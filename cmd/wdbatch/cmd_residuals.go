package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"wdbatch/internal/logging"
	"wdbatch/internal/residual"
)

var (
	resSpecRoot string
	resOutRoot  string
	resOutDir   string
	resOutput   string
	resVerbose  bool
)

var residualsCmd = &cobra.Command{
	Use:   "residuals [specfile...]",
	Short: "Tabulate observed vs. model photometry for fitted objects",
	Long: "Derives each spectrum file's result location, loads the per-object\n" +
		"photometric fit table, and writes one wide table of per-band observed,\n" +
		"error, model and residual magnitudes, sorted by object name. Spectrum\n" +
		"files without results are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		specFiles := args
		if len(specFiles) == 0 {
			pattern := filepath.Join(resSpecRoot, "*", "*-total*.flm")
			var err error
			specFiles, err = filepath.Glob(pattern)
			if err != nil {
				return fmt.Errorf("glob %q: %w", pattern, err)
			}
		}

		agg := &residual.Aggregator{
			OutRoot: resOutRoot,
			OutDir:  resOutDir,
			Verbose: resVerbose,
			Log:     logging.New("residuals"),
		}
		tbl, err := agg.Aggregate(specFiles)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
		if err := tbl.WriteFile(resOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d objects)\n", resOutput, len(tbl.Rows))
		return nil
	},
}

func init() {
	residualsCmd.Flags().StringVar(&resSpecRoot, "specroot", "data/spectroscopy", "Spectroscopy root used when no spec files are given")
	residualsCmd.Flags().StringVar(&resOutRoot, "outroot", "", "Output root the fits ran with (default out)")
	residualsCmd.Flags().StringVar(&resOutDir, "outdir", "", "Verbatim output directory override")
	residualsCmd.Flags().StringVar(&resOutput, "output", "residuals.dat", "Residual table output file")
	residualsCmd.Flags().BoolVarP(&resVerbose, "verbose", "v", false, "Warn about spectrum files without loadable results")
}
