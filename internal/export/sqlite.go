package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// createBooks holds the snapshot table. position is the 0-based sequence
// index at export time.
const createBooks = `CREATE TABLE IF NOT EXISTS books (
    position INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    price REAL NOT NULL,
    year INTEGER NOT NULL,
    snapshot_id TEXT NOT NULL
);`

// SQLite writes the catalog into the books table of bookshop.db. Each export
// replaces every row inside one transaction.
type SQLite struct {
	path string
	log  zerolog.Logger
}

// NewSQLite returns an exporter that writes bookshop.db in dataDir.
func NewSQLite(dataDir string, log zerolog.Logger) *SQLite {
	return &SQLite{
		path: filepath.Join(dataDir, SQLiteFileName),
		log:  log.With().Str("exporter", "sqlite").Logger(),
	}
}

// Path returns the database file the exporter writes.
func (s *SQLite) Path() string {
	return s.path
}

// Export replaces the books table with the given snapshot.
func (s *SQLite) Export(ctx context.Context, books []types.Book) (string, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", s.path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createBooks); err != nil {
		return "", fmt.Errorf("create schema: %w", err)
	}

	snapshotID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate snapshot id: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM books`); err != nil {
		return "", fmt.Errorf("clear books: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO books (position, title, author, price, year, snapshot_id) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range books {
		if _, err := stmt.ExecContext(ctx, i, b.Title, b.Author, b.Price, b.Year, snapshotID.String()); err != nil {
			return "", fmt.Errorf("insert book %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	s.log.Debug().
		Str("path", s.path).
		Str("snapshot_id", snapshotID.String()).
		Int("books", len(books)).
		Msg("catalog exported")
	return s.path, nil
}
