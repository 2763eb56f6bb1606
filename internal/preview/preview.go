// Package preview reads file metadata and a capped slice of content for the
// preview pane. The navigation core only decides which entry is focused;
// everything here is a read-only collaborator on top of that decision.
package preview

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"pillar/pkg/types"
)

// DefaultMaxBytes caps how much of a file is read for preview.
const DefaultMaxBytes int64 = 4096

// Details describes the focused entry for the preview pane.
type Details struct {
	Path          string
	Size          int64
	Mode          os.FileMode
	ModTime       time.Time
	SymlinkTarget string
	MimeType      string
	Content       string
	Binary        bool
}

// ForEntry builds preview details for a focused entry. Content is read only
// for text-classified regular files and capped at maxBytes; binary or
// oversized files get a placeholder instead of bytes.
func ForEntry(entry types.PathEntry, maxBytes int64) (*Details, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	info, err := os.Lstat(entry.Path)
	if err != nil {
		return nil, err
	}

	d := &Details{
		Path:    entry.Path,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}

	if entry.Kind == types.KindSymlink {
		if target, err := os.Readlink(entry.Path); err == nil {
			d.SymlinkTarget = target
		}
	}

	if entry.Kind != types.KindFile {
		return d, nil
	}

	d.MimeType = types.MimeByExtension(entry.Name)
	if !entry.TextLikely {
		d.Binary = true
		d.Content = "[binary file - no preview]"
		return d, nil
	}
	if info.Size() > maxBytes {
		d.Content = fmt.Sprintf("[file too large: %d bytes]", info.Size())
		return d, nil
	}

	content, binary, err := readCapped(entry.Path, maxBytes)
	if err != nil {
		d.Content = "[could not read file]"
		return d, nil
	}
	d.Binary = binary
	if binary {
		d.Content = "[binary file - no preview]"
	} else {
		d.Content = content
	}
	return d, nil
}

// readCapped reads up to maxBytes and verifies the bytes are valid UTF-8.
// The extension check is only a guess; the bytes decide.
func readCapped(path string, maxBytes int64) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return "", false, err
	}
	if !utf8.Valid(buf) {
		return "", true, nil
	}
	return string(buf), false, nil
}

// FormatSize renders a byte count in human-readable form.
func FormatSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	value := float64(size)
	idx := 0
	for value >= 1024 && idx < len(units)-1 {
		value /= 1024
		idx++
	}
	if idx == 0 {
		return fmt.Sprintf("%d %s", size, units[idx])
	}
	return fmt.Sprintf("%.1f %s", value, units[idx])
}
