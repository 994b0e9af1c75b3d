package residual

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// BandRow is one passband row of a per-object photometric result file.
type BandRow struct {
	Passband string
	Mag      float64
	MagErr   float64
	ModelMag float64
	ResMag   float64
}

// resultColumns are the required columns of a _phot_model.dat file.
var resultColumns = []string{"pb", "mag", "mag_err", "model_mag", "res_mag"}

// ReadModelTable parses a per-object photometric result file: a
// whitespace-delimited ASCII table whose header names at least the
// columns pb, mag, mag_err, model_mag and res_mag.
func ReadModelTable(path string) ([]BandRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("residual: open %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	var idx map[string]int
	var rows []BandRow
	lineno := 0

	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if idx == nil {
			header := strings.Fields(strings.TrimPrefix(line, "#"))
			cand := make(map[string]int, len(header))
			for i, name := range header {
				cand[name] = i
			}
			missing := ""
			for _, name := range resultColumns {
				if _, ok := cand[name]; !ok {
					missing = name
					break
				}
			}
			if missing != "" {
				// A comment line without the result columns is
				// preamble, not the header.
				if strings.HasPrefix(line, "#") {
					continue
				}
				return nil, fmt.Errorf("residual: %q missing column %q", path, missing)
			}
			idx = cand
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row, err := parseBandRow(fields, idx)
		if err != nil {
			return nil, fmt.Errorf("residual: %q line %d: %w", path, lineno, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("residual: read %q: %w", path, err)
	}
	if idx == nil {
		return nil, fmt.Errorf("residual: %q is empty", path)
	}
	return rows, nil
}

func parseBandRow(fields []string, idx map[string]int) (BandRow, error) {
	get := func(name string) (string, error) {
		i := idx[name]
		if i >= len(fields) {
			return "", fmt.Errorf("missing field %q", name)
		}
		return fields[i], nil
	}

	var row BandRow
	pb, err := get("pb")
	if err != nil {
		return row, err
	}
	row.Passband = pb

	for _, col := range []struct {
		name string
		dst  *float64
	}{
		{"mag", &row.Mag},
		{"mag_err", &row.MagErr},
		{"model_mag", &row.ModelMag},
		{"res_mag", &row.ResMag},
	} {
		s, err := get(col.name)
		if err != nil {
			return row, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return row, fmt.Errorf("parse %s %q: %w", col.name, s, err)
		}
		*col.dst = v
	}
	return row, nil
}
