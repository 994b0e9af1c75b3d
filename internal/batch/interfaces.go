package batch

import "path/filepath"

// FileLister abstracts glob discovery so generation can be tested
// against a virtual filesystem.
type FileLister interface {
	Glob(pattern string) ([]string, error)
}

// OSLister is the default FileLister, backed by filepath.Glob.
type OSLister struct{}

func (OSLister) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// Verify compile-time interface compliance.
var _ FileLister = OSLister{}
