package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "WDphot.dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_PlainHeader(t *testing.T) {
	path := writeCatalog(t, `obj F275W dF275W
wd001 20.0 0.1
wd002 21.3 0.2
`)
	entries, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []Entry{{Name: "wd001"}, {Name: "wd002"}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch:\n%s", diff)
	}
}

func TestRead_CommentedHeader(t *testing.T) {
	path := writeCatalog(t, `# mag F275W obj
20.0 19.5 wd003
`)
	entries, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "wd003" {
		t.Errorf("entries = %v, want one wd003", entries)
	}
}

func TestRead_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeCatalog(t, `obj mag

# interlude
wd004 18.1
`)
	entries, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "wd004" {
		t.Errorf("entries = %v, want one wd004", entries)
	}
}

func TestRead_CommentPreambleBeforeHeader(t *testing.T) {
	path := writeCatalog(t, `# WD photometric catalog, cycle 22
# generated 2017-03-14
# obj F275W dF275W
wd001 20.0 0.1
`)
	entries, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "wd001" {
		t.Errorf("entries = %v, want one wd001", entries)
	}
}

func TestRead_AllCommentsNoHeader(t *testing.T) {
	path := writeCatalog(t, "# just a note\n# another note\n")
	if _, err := Read(path); err == nil {
		t.Fatal("expected error when no header names an obj column")
	}
}

func TestRead_MissingObjColumn(t *testing.T) {
	path := writeCatalog(t, "name mag\nwd001 20.0\n")
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for header without obj column")
	}
}

func TestRead_ShortRow(t *testing.T) {
	path := writeCatalog(t, "mag obj\n20.0\n")
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for row shorter than obj column")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.dat")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
