// Package output writes report artifacts.
package output

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultDir is the output directory, relative to the working directory.
const DefaultDir = "output"

// Writer places files in a directory, creating it if absent.
type Writer struct {
	fs  afero.Fs
	dir string
}

// NewWriter returns a Writer for dir on fs. An empty dir means DefaultDir.
func NewWriter(fs afero.Fs, dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{fs: fs, dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores data as name inside the output directory and returns its path.
// Data goes to a temporary file that is renamed into place, so a failed
// write never leaves a partial file under name.
func (w *Writer) Write(name string, data []byte) (string, error) {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(w.dir, name)

	tmp, err := afero.TempFile(w.fs, w.dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if err := w.fs.Chmod(tmpName, 0o644); err != nil {
		_ = w.fs.Remove(tmpName)
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName)
		return "", fmt.Errorf("rename %s: %w", path, err)
	}

	slog.Debug("wrote file", "path", path, "bytes", len(data))
	return path, nil
}
