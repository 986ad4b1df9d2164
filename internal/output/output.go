// Package output handles atomic writing of generated IDs to a file.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eduardolat/shortid"
)

const (
	// TempFilePrefix is the prefix for temporary files
	TempFilePrefix = ".shortid_"
	// tempIDBytes sizes the random part of temp file names
	tempIDBytes = 6
)

// Writer handles atomic file writes
type Writer struct {
	// idGenerator allows for dependency injection in tests
	idGenerator func() (string, error)
	// timeNow allows for dependency injection in tests
	timeNow func() time.Time
}

// New creates a new Writer
func New() *Writer {
	return &Writer{
		idGenerator: func() (string, error) { return shortid.NewWithBytes(tempIDBytes) },
		timeNow:     time.Now,
	}
}

// NewWithDeps creates a new Writer with custom dependencies (for testing)
func NewWithDeps(idGen func() (string, error), timeNow func() time.Time) *Writer {
	return &Writer{
		idGenerator: idGen,
		timeNow:     timeNow,
	}
}

// WriteResult contains information about a write operation
type WriteResult struct {
	// Path is the final path of the written file
	Path string
	// Lines is the number of IDs written
	Lines int
}

// Render joins IDs into newline-terminated content
func Render(ids []string) []byte {
	if len(ids) == 0 {
		return []byte{}
	}
	var buf bytes.Buffer
	buf.Grow(len(ids) * (len(ids[0]) + 1))
	for _, id := range ids {
		buf.WriteString(id)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteAtomic writes ids, one per line, to path:
// 1. Create temp file in the same directory
// 2. Set permissions
// 3. Write content and fsync
// 4. Atomic rename
func (w *Writer) WriteAtomic(path string, ids []string, mode os.FileMode) (*WriteResult, error) {
	dir := filepath.Dir(path)

	stat, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("output directory is not a directory: %s", dir)
	}

	// Generate temp filename
	timestamp := w.timeNow().UTC().Format("20060102_150405")
	id, err := w.idGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate temp file ID: %w", err)
	}
	tempFilename := fmt.Sprintf("%s%s_%s", TempFilePrefix, timestamp, id)
	tempPath := filepath.Join(dir, tempFilename)

	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_EXCL, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	// Ensure cleanup on error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	// Set permissions explicitly (in case umask affected file creation)
	if err := tempFile.Chmod(mode); err != nil {
		return nil, fmt.Errorf("failed to set temp file permissions: %w", err)
	}

	if _, err := tempFile.Write(Render(ids)); err != nil {
		return nil, fmt.Errorf("failed to write content: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Close before rename
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return nil, fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return &WriteResult{Path: path, Lines: len(ids)}, nil
}

// IsTempFile reports whether name looks like a leftover temp file
func IsTempFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), TempFilePrefix)
}

// WriterProvider is an interface for atomic file writing
type WriterProvider interface {
	WriteAtomic(path string, ids []string, mode os.FileMode) (*WriteResult, error)
}
