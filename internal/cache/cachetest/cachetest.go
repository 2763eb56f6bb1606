// Package cachetest provides an in-memory Lister so navigation tests never
// touch the real filesystem.
package cachetest

import (
	"os"

	"pillar/internal/cache"
	"pillar/pkg/types"
)

// FakeFS is an in-memory filesystem keyed by absolute directory path.
type FakeFS struct {
	Dirs      map[string][]cache.RawEntry
	Errs      map[string]error
	ListCalls map[string]int
}

// New returns an empty fake filesystem.
func New() *FakeFS {
	return &FakeFS{
		Dirs:      make(map[string][]cache.RawEntry),
		Errs:      make(map[string]error),
		ListCalls: make(map[string]int),
	}
}

// AddDir registers a directory with the given raw children.
func (f *FakeFS) AddDir(path string, entries ...cache.RawEntry) {
	f.Dirs[path] = entries
}

// FailDir makes listing the directory fail with err.
func (f *FakeFS) FailDir(path string, err error) {
	f.Errs[path] = err
}

// List implements cache.Lister.
func (f *FakeFS) List(path string) ([]cache.RawEntry, error) {
	f.ListCalls[path]++
	if err, ok := f.Errs[path]; ok {
		return nil, err
	}
	entries, ok := f.Dirs[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entries, nil
}

// Stat implements cache.Lister.
func (f *FakeFS) Stat(path string) (types.EntryKind, error) {
	if _, ok := f.Dirs[path]; ok {
		return types.KindDir, nil
	}
	return types.KindFile, nil
}

// Dir builds a raw directory entry.
func Dir(name string) cache.RawEntry {
	return cache.RawEntry{Name: name, Kind: types.KindDir}
}

// File builds a raw file entry.
func File(name string) cache.RawEntry {
	return cache.RawEntry{Name: name, Kind: types.KindFile}
}

// Symlink builds a raw symlink entry; targetDir marks it enterable.
func Symlink(name string, targetDir bool) cache.RawEntry {
	return cache.RawEntry{Name: name, Kind: types.KindSymlink, TargetDir: targetDir}
}
