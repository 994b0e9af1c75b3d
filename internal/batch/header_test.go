package batch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderLines_Defaults(t *testing.T) {
	got := DefaultScheduler().HeaderLines()
	want := []string{
		"#!/bin/bash",
		"#SBATCH -n 32",
		"#SBATCH -N 1",
		"#SBATCH --contiguous",
		"#SBATCH -t 6-00:00",
		"#SBATCH -p general",
		"#SBATCH --mem-per-cpu=1000",
		"#SBATCH --mail-type=ALL",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header mismatch:\n%s", diff)
	}
}

func TestHeaderLines_MailUserAndZeroFill(t *testing.T) {
	s := Scheduler{Partition: "shared", MailUser: "wd@example.edu"}
	got := s.HeaderLines()

	if len(got) != 9 {
		t.Fatalf("got %d lines, want 9 with mail-user", len(got))
	}
	if got[5] != "#SBATCH -p shared" {
		t.Errorf("partition line = %q", got[5])
	}
	if got[1] != "#SBATCH -n 32" {
		t.Errorf("zero tasks should fall back to default: %q", got[1])
	}
	if got[8] != "#SBATCH --mail-user=wd@example.edu" {
		t.Errorf("mail-user line = %q", got[8])
	}
}
