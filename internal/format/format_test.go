package format

import (
	"math"
	"strings"
	"testing"
)

func TestFmtMag(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{20.0, "20.0000"},
		{0.05, "0.0500"},
		{-1.23456, "-1.2346"},
		{math.NaN(), "nan"},
	}
	for _, c := range cases {
		if got := FmtMag(c.in); got != c.want {
			t.Errorf("FmtMag(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewTable_RendersHeaderAndRows(t *testing.T) {
	tb := NewTable(3, 3)
	tb.Header("obj", "specfile", "F275W")
	tb.Row("wd001", "a/wd001-01-total.flm", "20.0000")

	out := tb.String()
	for _, want := range []string{"obj", "specfile", "F275W", "wd001", "20.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestNewTable_HeaderCasePreserved(t *testing.T) {
	tb := NewTable(3, 4)
	tb.Header("obj", "dF275W", "mF275W", "rF275W")
	tb.Row("wd001", "0.1000", "19.9500", "0.0500")

	out := tb.String()
	for _, want := range []string{"dF275W", "mF275W", "rF275W"} {
		if !strings.Contains(out, want) {
			t.Errorf("header cell %q not rendered verbatim:\n%s", want, out)
		}
	}
	if strings.Contains(out, "DF275W") || strings.Contains(out, "OBJ") {
		t.Errorf("header cells were uppercased:\n%s", out)
	}
}
