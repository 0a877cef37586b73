// Package export writes a full snapshot of the catalog to durable storage.
// Every export overwrites the previous one; nothing is appended and nothing
// is read back at startup.
package export

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Fixed file names inside the data directory.
const (
	JSONFileName   = "catalog.json"
	SQLiteFileName = "bookshop.db"
)

// Exporter persists a catalog snapshot and returns where it was written.
type Exporter interface {
	Export(ctx context.Context, books []types.Book) (string, error)
}

// New returns the exporter selected by cfg.Backend.
func New(cfg types.Config, log zerolog.Logger) (Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}

	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONFile(dataDir, log), nil
	case types.BackendSQLite:
		return NewSQLite(dataDir, log), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrBackendUnknown, cfg.Backend)
	}
}
