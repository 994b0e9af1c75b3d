package batch

import (
	"fmt"
	"strings"
)

// FitParams holds the fit_WDmodel command-line knobs baked into each
// generated script.
type FitParams struct {
	NProcs         int    // MPI ranks
	SampType       string // sampler type
	NTemps         int    // parallel-tempering temperatures
	NProd          int    // production steps
	NWalkers       int
	NBurnin        int
	Thin           int
	PhotDispersion float64 // extra photometric scatter; 0 omits the flag
	Redo           bool
	IgnorePhot     bool   // fit without photometry
	OutRoot        string // --outroot; also the output-dir root for derived paths
}

// DefaultParams is the parameter set for spectrum files claimed by a
// catalog object.
func DefaultParams() FitParams {
	return FitParams{
		NProcs:         32,
		SampType:       "pt",
		NTemps:         4,
		NProd:          5000,
		NWalkers:       100,
		NBurnin:        500,
		Thin:           10,
		PhotDispersion: 0.001,
		Redo:           true,
	}
}

// OrphanParams is the parameter set for spectrum files with no catalog
// photometry: the fit ignores photometry, runs longer, and writes under
// a separate output root.
func OrphanParams() FitParams {
	return FitParams{
		NProcs:     32,
		SampType:   "pt",
		NTemps:     4,
		NProd:      10000,
		NWalkers:   100,
		NBurnin:    2000,
		Thin:       10,
		Redo:       true,
		IgnorePhot: true,
		OutRoot:    "out/ignorephot",
	}
}

// CommandLine renders the mpirun invocation for one spectrum file.
// photFile is ignored when the params fit without photometry.
func (p FitParams) CommandLine(specFile, photFile string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "mpirun -np %d ./fit_WDmodel --mpi --specfile %s", p.NProcs, specFile)
	if p.IgnorePhot {
		b.WriteString(" --ignorephot")
	} else if photFile != "" {
		fmt.Fprintf(&b, " --photfile %s", photFile)
	}
	if p.Redo {
		b.WriteString(" --redo")
	}
	fmt.Fprintf(&b, " --samptype %s --ntemps %d --nprod %d --nwalkers %d --nburnin %d --thin %d",
		p.SampType, p.NTemps, p.NProd, p.NWalkers, p.NBurnin, p.Thin)
	if p.PhotDispersion > 0 {
		fmt.Fprintf(&b, " --phot_dispersion %g", p.PhotDispersion)
	}
	if p.OutRoot != "" {
		fmt.Fprintf(&b, " --outroot %s", p.OutRoot)
	}
	return b.String()
}
