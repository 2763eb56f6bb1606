package cache

import (
	"os"
	"path/filepath"

	"pillar/pkg/types"
)

// RawEntry is one unordered child as reported by a Lister. The cache turns
// raw entries into sorted PathEntry listings.
type RawEntry struct {
	Name      string
	Kind      types.EntryKind
	Size      int64
	TargetDir bool
}

// Lister is the filesystem capability the cache depends on. The core never
// writes; tests substitute an in-memory implementation.
type Lister interface {
	List(path string) ([]RawEntry, error)
	Stat(path string) (types.EntryKind, error)
}

// OSLister reads the local filesystem.
type OSLister struct{}

// List returns the raw children of a directory.
func (OSLister) List(path string) ([]RawEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	raw := make([]RawEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := RawEntry{Name: de.Name()}
		switch {
		case de.Type()&os.ModeSymlink != 0:
			entry.Kind = types.KindSymlink
			// Follow the link once so symlinked directories stay enterable.
			if info, err := os.Stat(filepath.Join(path, de.Name())); err == nil && info.IsDir() {
				entry.TargetDir = true
			}
		case de.IsDir():
			entry.Kind = types.KindDir
		case de.Type().IsRegular():
			entry.Kind = types.KindFile
		default:
			entry.Kind = types.KindOther
		}
		if info, err := de.Info(); err == nil {
			entry.Size = info.Size()
		}
		raw = append(raw, entry)
	}
	return raw, nil
}

// Stat reports the kind of a single path.
func (OSLister) Stat(path string) (types.EntryKind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return types.KindOther, err
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return types.KindSymlink, nil
	case info.IsDir():
		return types.KindDir, nil
	case info.Mode().IsRegular():
		return types.KindFile, nil
	default:
		return types.KindOther, nil
	}
}
