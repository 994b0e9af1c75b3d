package residual

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"wdbatch/internal/format"
)

// Table is the consolidated residual table, immutable once built.
type Table struct {
	Rows []Row
}

// Columns returns the fixed header: obj and specfile, then observed
// magnitude, error, model magnitude and residual per band.
func Columns() []string {
	cols := make([]string, 0, 2+len(Bands)*cellsPerBand)
	cols = append(cols, "obj", "specfile")
	for _, pb := range Bands {
		cols = append(cols, pb, "d"+pb, "m"+pb, "r"+pb)
	}
	return cols
}

// WriteFile writes the table as aligned plain text, overwriting path.
// Numeric cells carry four decimal places; missing bands render as nan.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("residual: create %q: %w", path, err)
	}

	w := tabwriter.NewWriter(f, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(Columns(), "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row.cells(), "\t"))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("residual: write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("residual: close %q: %w", path, err)
	}
	return nil
}

// Render returns the table formatted for the terminal.
func (t *Table) Render() string {
	cols := Columns()
	tb := format.NewTable(3, len(cols))
	tb.Header(cols...)
	for _, row := range t.Rows {
		cells := row.cells()
		vals := make([]any, len(cells))
		for i, c := range cells {
			vals[i] = c
		}
		tb.Row(vals...)
	}
	return tb.String()
}

func (r Row) cells() []string {
	cells := make([]string, 0, 2+len(r.Values))
	cells = append(cells, r.Object, r.SpecFile)
	for _, v := range r.Values {
		cells = append(cells, format.FmtMag(v))
	}
	return cells
}
