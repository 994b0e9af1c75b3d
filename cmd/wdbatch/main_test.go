package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRegistersSubcommands(t *testing.T) {
	for _, name := range []string{"batch", "residuals"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestResidualsCommand_EmptyTree(t *testing.T) {
	tmp := t.TempDir()
	resSpecRoot = filepath.Join(tmp, "spectroscopy")
	resOutput = filepath.Join(tmp, "residuals.dat")
	defer func() {
		resSpecRoot = "data/spectroscopy"
		resOutput = "residuals.dat"
	}()

	var out bytes.Buffer
	residualsCmd.SetOut(&out)
	if err := residualsCmd.RunE(residualsCmd, nil); err != nil {
		t.Fatalf("residuals: %v", err)
	}

	if !strings.Contains(out.String(), "0 objects") {
		t.Errorf("output = %q, want empty-table summary", out.String())
	}
	if _, err := os.Stat(resOutput); err != nil {
		t.Errorf("residuals file not written: %v", err)
	}
}
