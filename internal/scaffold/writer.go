package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/primekit/primer/internal/defs"
)

// FileWriter writes text content to the filesystem, creating ancestor
// directories as needed. It knows nothing about overwrite policies; the
// pipeline decides whether a write happens at all.
type FileWriter struct{}

// NewFileWriter creates a FileWriter.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Write ensures every ancestor directory of path exists, writes content
// (replacing any existing file), and returns the absolute path written.
func (w *FileWriter) Write(path string, content []byte) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), defs.DirPerm); err != nil {
		return "", fmt.Errorf("mkdir for %q: %w", abs, err)
	}

	if err := os.WriteFile(abs, content, defs.FilePerm); err != nil {
		return "", fmt.Errorf("write %q: %w", abs, err)
	}

	return abs, nil
}
