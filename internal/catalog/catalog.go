// Package catalog reads the photometric catalog that drives batch
// generation: a whitespace-delimited ASCII table whose header names at
// least an "obj" column.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one object row of the photometric catalog.
type Entry struct {
	Name string
}

// Read parses the catalog at path and returns its entries in file
// order. The first significant line is the header; a leading '#' on it
// is tolerated (astropy commented_header style). Later comment and
// blank lines are skipped.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	objCol := -1
	var entries []Entry
	lineno := 0

	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if objCol < 0 {
			header := strings.Fields(strings.TrimPrefix(line, "#"))
			for i, name := range header {
				if name == "obj" {
					objCol = i
					break
				}
			}
			if objCol < 0 {
				// A comment line without the obj column is preamble,
				// not the header.
				if strings.HasPrefix(line, "#") {
					continue
				}
				return nil, fmt.Errorf("catalog: %q has no obj column in header %v", path, header)
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if objCol >= len(fields) {
			return nil, fmt.Errorf("catalog: %q line %d: %d fields, obj column is %d", path, lineno, len(fields), objCol+1)
		}
		entries = append(entries, Entry{Name: fields[objCol]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	if objCol < 0 {
		return nil, fmt.Errorf("catalog: %q has no header naming an obj column", path)
	}
	return entries, nil
}
