package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// JSONFile writes the catalog as an indented JSON array to catalog.json.
type JSONFile struct {
	path string
	log  zerolog.Logger
}

// NewJSONFile returns an exporter that writes catalog.json in dataDir.
func NewJSONFile(dataDir string, log zerolog.Logger) *JSONFile {
	return &JSONFile{
		path: filepath.Join(dataDir, JSONFileName),
		log:  log.With().Str("exporter", "json").Logger(),
	}
}

// Path returns the file the exporter writes.
func (j *JSONFile) Path() string {
	return j.path
}

// Export serializes books in order and replaces the file atomically.
func (j *JSONFile) Export(ctx context.Context, books []types.Book) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if books == nil {
		books = []types.Book{}
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	if err := writeFileAtomic(j.path, data); err != nil {
		return "", err
	}

	j.log.Debug().Str("path", j.path).Int("books", len(books)).Msg("catalog exported")
	return j.path, nil
}

// writeFileAtomic writes data using the temp-file, fsync, rename pattern so a
// failed write never leaves a truncated export behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
