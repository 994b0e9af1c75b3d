// Package format renders result tables for the terminal.
package format

import (
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FmtMag renders one magnitude cell: four decimal places, "nan" for the
// missing-band sentinel.
func FmtMag(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// TableBuilder is the project-owned table abstraction for terminal output.
type TableBuilder interface {
	// Header sets the column headers.
	Header(cols ...string)
	// Row appends a data row.
	Row(vals ...any)
	// String renders the table.
	String() string
}

// NewTable returns a TableBuilder with numeric columns right-aligned
// from firstNumeric (1-based) onward. Header cells render verbatim:
// column names like dF275W vs mF275W are case-significant.
func NewTable(firstNumeric, ncols int) TableBuilder {
	w := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	w.SetStyle(style)

	var cfgs []table.ColumnConfig
	for i := firstNumeric; i <= ncols; i++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	w.SetColumnConfigs(cfgs)

	return &prettyAdapter{writer: w}
}

// prettyAdapter wraps go-pretty/v6/table.Writer behind the TableBuilder interface.
type prettyAdapter struct {
	writer table.Writer
}

func (a *prettyAdapter) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	a.writer.AppendHeader(row)
}

func (a *prettyAdapter) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendRow(row)
}

func (a *prettyAdapter) String() string {
	return a.writer.Render()
}
