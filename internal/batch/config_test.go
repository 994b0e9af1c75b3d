package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ApplyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	content := `
scheduler:
  partition: shared
  mail_user: wd@example.edu
matched:
  nprod: 4000
  ntemps: 5
orphan:
  outroot: scratch/ignorephot
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	matched := DefaultParams()
	orphan := OrphanParams()
	cfg.Apply(&matched, &orphan)

	if matched.NProd != 4000 || matched.NTemps != 5 {
		t.Errorf("matched overrides not applied: %+v", matched)
	}
	if matched.NWalkers != 100 {
		t.Errorf("untouched field changed: nwalkers = %d", matched.NWalkers)
	}
	if orphan.OutRoot != "scratch/ignorephot" {
		t.Errorf("orphan outroot = %q", orphan.OutRoot)
	}
	if orphan.NProd != 10000 {
		t.Errorf("orphan nprod = %d, want default 10000", orphan.NProd)
	}

	header := cfg.Scheduler.HeaderLines()
	if header[5] != "#SBATCH -p shared" {
		t.Errorf("partition line = %q", header[5])
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
