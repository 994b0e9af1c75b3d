// Package pathname derives object names and output locations from
// spectrum file paths.
//
// A spectrum file is named by convention after its object:
// <object>-<visit>-total<...>.flm. The object name is everything before
// the first '-' in the basename, and every output artifact for one
// spectrum file lives under <outroot>/<object>/<basename-sans-ext>/.
package pathname

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutRoot is the root of derived output directories when no
// explicit root is given.
const DefaultOutRoot = "out"

// ErrEmptyPath is returned when a required path argument is empty.
var ErrEmptyPath = errors.New("pathname: empty path")

// Options controls output-directory derivation.
type Options struct {
	OutRoot  string // root for derived dirs; DefaultOutRoot when empty
	OutDir   string // verbatim output dir; skips derivation entirely
	NoCreate bool   // do not create the output dir
}

// Resolve maps a spectrum file path to its object name and output
// directory. Unless opts.NoCreate is set, the directory is created;
// creation is idempotent and safe under concurrent callers targeting
// the same object.
func Resolve(specFile string, opts Options) (objName, outDir string, err error) {
	if specFile == "" {
		return "", "", ErrEmptyPath
	}

	base := baseSansExt(specFile)
	objName, _, _ = strings.Cut(base, "-")

	if opts.OutDir != "" {
		outDir = opts.OutDir
	} else {
		root := opts.OutRoot
		if root == "" {
			root = DefaultOutRoot
		}
		outDir = filepath.Join(root, objName, base)
	}

	if !opts.NoCreate {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return "", "", fmt.Errorf("pathname: create output dir %q: %w", outDir, err)
		}
	}
	return objName, outDir, nil
}

// Outfile builds the canonical output file path for specFile under dir:
// the spectrum basename with its extension stripped, concatenated with
// suffix. Pure path math, no filesystem access.
func Outfile(dir, specFile, suffix string) (string, error) {
	if dir == "" || specFile == "" {
		return "", ErrEmptyPath
	}
	return filepath.Join(dir, baseSansExt(specFile)+suffix), nil
}

func baseSansExt(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
