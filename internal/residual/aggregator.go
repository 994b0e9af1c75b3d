// Package residual consolidates per-object photometric fit results
// into one wide table of observed vs. model magnitudes with per-band
// residuals.
package residual

import (
	"log/slog"
	"math"
	"sort"

	"wdbatch/internal/pathname"
)

// Bands is the fixed, ordered passband list tabulated for every
// object. Bands absent from an object's result file yield NaN cells.
var Bands = []string{"F275W", "F336W", "F475W", "F625W", "F775W", "F160W"}

// cellsPerBand is mag, magErr, modelMag, resMag.
const cellsPerBand = 4

// Row is one object's entry in the residual table.
type Row struct {
	Object   string
	SpecFile string
	Values   []float64 // cellsPerBand values per entry of Bands
}

// Aggregator builds the consolidated residual table from spectrum file
// paths, deriving each object's result-file location the same way the
// batch generator derived its output locations.
type Aggregator struct {
	OutRoot string // output root the fits ran with; pathname default when empty
	OutDir  string // verbatim output dir override
	Verbose bool   // warn on spectrum files without loadable results
	Log     *slog.Logger
}

// Aggregate loads each spectrum file's fit results and assembles the
// table, sorted ascending by object name. Spectrum files whose result
// file is missing or malformed are skipped; a PathError on input is
// fatal.
func (a *Aggregator) Aggregate(specFiles []string) (*Table, error) {
	log := a.Log
	if log == nil {
		log = slog.Default()
	}

	var rows []Row
	for _, specFile := range specFiles {
		obj, outDir, err := pathname.Resolve(specFile, pathname.Options{
			OutRoot:  a.OutRoot,
			OutDir:   a.OutDir,
			NoCreate: true,
		})
		if err != nil {
			return nil, err
		}
		resultPath, err := pathname.Outfile(outDir, specFile, "_phot_model.dat")
		if err != nil {
			return nil, err
		}

		bandRows, err := ReadModelTable(resultPath)
		if err != nil {
			if a.Verbose {
				log.Warn("no fit results for spectrum file",
					slog.String("object", obj),
					slog.String("specfile", specFile),
					slog.String("result", resultPath),
					slog.String("error", err.Error()),
				)
			}
			continue
		}

		row := Row{Object: obj, SpecFile: specFile}
		for _, pb := range Bands {
			if br, ok := firstBand(bandRows, pb); ok {
				row.Values = append(row.Values, br.Mag, br.MagErr, br.ModelMag, br.ResMag)
			} else {
				nan := math.NaN()
				row.Values = append(row.Values, nan, nan, nan, nan)
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Object < rows[j].Object })
	return &Table{Rows: rows}, nil
}

// firstBand returns the first row whose passband equals pb. Later
// duplicates are ignored.
func firstBand(rows []BandRow, pb string) (BandRow, bool) {
	for _, r := range rows {
		if r.Passband == pb {
			return r, true
		}
	}
	return BandRow{}, false
}
