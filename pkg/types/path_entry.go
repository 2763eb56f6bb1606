package types

import (
	"path/filepath"
	"strings"
)

// EntryKind classifies a directory child.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
	KindOther
)

// String returns a short human-readable name for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// PathEntry is a single filesystem child as seen by the browser.
// Immutable once constructed; the cache rebuilds entries wholesale on
// invalidation rather than diffing.
type PathEntry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
	Size int64     `json:"size"`

	// TargetDir is set for symlinks whose target resolves to a directory,
	// making them enterable like a plain directory.
	TargetDir bool `json:"target_dir,omitempty"`

	// TextLikely is a coarse text/binary classification from the name.
	// Preview and search both consult it, so it lives on the entry rather
	// than in the preview collaborator.
	TextLikely bool `json:"text_likely,omitempty"`
}

// IsDir reports whether entering this entry descends into a directory.
func (e PathEntry) IsDir() bool {
	return e.Kind == KindDir || (e.Kind == KindSymlink && e.TargetDir)
}

// SortKey returns the case-insensitive ordering key for the entry.
func (e PathEntry) SortKey() string {
	return strings.ToLower(e.Name)
}

// MimeByExtension maps a file name to a MIME type, or "" when unknown.
// Extension-based only; content sniffing is deliberately out of scope.
func MimeByExtension(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "txt", "log":
		return "text/plain"
	case "md", "markdown":
		return "text/markdown"
	case "html", "htm":
		return "text/html"
	case "css":
		return "text/css"
	case "csv":
		return "text/csv"
	case "xml":
		return "application/xml"
	case "rs":
		return "text/x-rust"
	case "go":
		return "text/x-go"
	case "py", "pyw":
		return "text/x-python"
	case "js", "mjs":
		return "application/javascript"
	case "ts", "mts":
		return "application/typescript"
	case "c", "cc", "cpp", "h", "hpp":
		return "text/x-c"
	case "java":
		return "text/x-java"
	case "rb":
		return "text/x-ruby"
	case "lua":
		return "text/x-lua"
	case "sql":
		return "text/x-sql"
	case "toml":
		return "application/toml"
	case "json":
		return "application/json"
	case "yaml", "yml":
		return "application/x-yaml"
	case "sh", "bash":
		return "application/x-sh"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml"
	case "zip":
		return "application/zip"
	case "gz":
		return "application/gzip"
	case "tar":
		return "application/x-tar"
	default:
		return ""
	}
}

// textMimePrefixes lists MIME prefixes treated as previewable text.
var textMimePrefixes = []string{
	"text/",
	"application/json",
	"application/xml",
	"application/javascript",
	"application/typescript",
	"application/toml",
	"application/x-yaml",
	"application/x-sh",
}

// TextLikelyFor reports whether a file name looks like previewable text.
// Files with no extension are given the benefit of the doubt; the preview
// reader still verifies the bytes are valid UTF-8 before showing them.
func TextLikelyFor(name string) bool {
	mime := MimeByExtension(name)
	if mime == "" {
		return filepath.Ext(name) == ""
	}
	for _, p := range textMimePrefixes {
		if strings.HasPrefix(mime, p) {
			return true
		}
	}
	return false
}
