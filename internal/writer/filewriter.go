// Package writer exposes sinks for rendered .properties documents.
package writer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sink receives a fully rendered document.
type Sink interface {
	WriteDocument(buf []byte) error
}

var (
	// ensure we implement desired interface
	_ Sink = &FileWriter{}
	_ Sink = &StreamWriter{}
)

// DefaultPerm is used when the destination does not exist yet.
const DefaultPerm fs.FileMode = 0o644

// FileWriter writes documents to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteDocument writes buf to the configured path atomically via temp file +
// rename. An existing file keeps its permission bits.
func (w *FileWriter) WriteDocument(buf []byte) error {
	perm := DefaultPerm
	if info, err := os.Stat(w.Path); err == nil {
		perm = info.Mode().Perm()
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".propkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
