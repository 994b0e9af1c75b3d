// Package batch maps a photometric catalog and a spectroscopy tree to
// one SLURM batch script per spectrum file.
//
// Generation runs in two passes. The matched pass globs each catalog
// object's spectrum files and scripts them with the default fit
// parameters. The orphan pass then scripts every discovered spectrum
// file no object claimed, using the ignore-photometry parameters and a
// separate output root.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"wdbatch/internal/catalog"
	"wdbatch/internal/pathname"
)

// Generator writes SLURM batch scripts for a spectroscopy tree.
type Generator struct {
	SpecRoot    string // root of the spectroscopy tree
	ScriptsRoot string // root for matched-pass scripts; orphans go under <ScriptsRoot>/ignorephot
	PhotFile    string // photometric catalog path passed to fit_WDmodel

	Matched FitParams
	Orphan  FitParams
	Header  []string // scheduler preamble; DefaultScheduler().HeaderLines() when empty

	Workers  int        // matched-pass parallelism; <=1 is serial
	Lister   FileLister // nil = OSLister
	Progress io.Writer  // one line per discovered file; nil = discard
	Log      *slog.Logger

	mu sync.Mutex // guards Progress writes from matched-pass workers
}

// Summary reports what one Generate run produced. With overlapping
// object globs a file can be claimed more than once, and Matched counts
// each claim.
type Summary struct {
	Matched int
	Orphans int
}

// Generate runs the matched pass over entries in catalog order, then
// the orphan pass over the set difference of discovered and claimed
// files. Any script write failure aborts the run; scripts already
// written stay on disk.
func (g *Generator) Generate(entries []catalog.Entry) (Summary, error) {
	lister := g.Lister
	if lister == nil {
		lister = OSLister{}
	}
	log := g.Log
	if log == nil {
		log = slog.Default()
	}

	var sum Summary
	used := make(map[string]struct{})

	workers := g.Workers
	if workers < 1 {
		workers = 1
	}

	var mu sync.Mutex
	eg := new(errgroup.Group)
	eg.SetLimit(workers)
	for _, entry := range entries {
		entry := entry
		eg.Go(func() error {
			claimed, err := g.generateForObject(lister, entry)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, f := range claimed {
				used[f] = struct{}{}
			}
			sum.Matched += len(claimed)
			mu.Unlock()
			return nil
		})
	}
	// The orphan pass must not start before every matched worker has
	// finished and merged its claims.
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	log.Info("matched pass done", "objects", len(entries), "scripts", sum.Matched)

	pattern := filepath.Join(g.SpecRoot, "*", "*-total*.flm")
	all, err := lister.Glob(pattern)
	if err != nil {
		return Summary{}, fmt.Errorf("batch: glob %q: %w", pattern, err)
	}
	for _, specFile := range all {
		if _, ok := used[specFile]; ok {
			continue
		}
		g.progress(specFile)
		if err := g.writeScript(specFile, g.Orphan, filepath.Join(g.ScriptsRoot, "ignorephot")); err != nil {
			return Summary{}, err
		}
		sum.Orphans++
	}
	log.Info("orphan pass done", "discovered", len(all), "scripts", sum.Orphans)

	return sum, nil
}

func (g *Generator) generateForObject(lister FileLister, entry catalog.Entry) ([]string, error) {
	pattern := filepath.Join(g.SpecRoot, "*", entry.Name+"-*-total*.flm")
	specFiles, err := lister.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("batch: glob %q: %w", pattern, err)
	}
	for _, specFile := range specFiles {
		g.progress(specFile)
		if err := g.writeScript(specFile, g.Matched, g.ScriptsRoot); err != nil {
			return nil, err
		}
	}
	return specFiles, nil
}

// writeScript derives the output locations for one spectrum file and
// writes its batch script under scriptsRoot.
func (g *Generator) writeScript(specFile string, p FitParams, scriptsRoot string) error {
	_, outDir, err := pathname.Resolve(specFile, pathname.Options{OutRoot: p.OutRoot})
	if err != nil {
		return err
	}
	stdoutPath, err := pathname.Outfile(outDir, specFile, ".stdout")
	if err != nil {
		return err
	}
	stderrPath, err := pathname.Outfile(outDir, specFile, ".stderr")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(scriptsRoot, 0o755); err != nil {
		return fmt.Errorf("batch: create scripts dir %q: %w", scriptsRoot, err)
	}
	scriptPath, err := pathname.Outfile(scriptsRoot, specFile, ".sh")
	if err != nil {
		return err
	}

	header := g.Header
	if len(header) == 0 {
		header = DefaultScheduler().HeaderLines()
	}

	var b strings.Builder
	for _, line := range header {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "#SBATCH -o %s\n", stdoutPath)
	fmt.Fprintf(&b, "#SBATCH -e %s\n", stderrPath)
	b.WriteString(p.CommandLine(specFile, g.PhotFile))
	b.WriteByte('\n')

	if err := os.WriteFile(scriptPath, []byte(b.String()), 0o755); err != nil {
		return fmt.Errorf("batch: write script %q: %w", scriptPath, err)
	}
	return nil
}

func (g *Generator) progress(specFile string) {
	if g.Progress == nil {
		return
	}
	g.mu.Lock()
	fmt.Fprintln(g.Progress, specFile)
	g.mu.Unlock()
}
