// Package storage keeps the local import ledger: a record of statement
// lines already pushed to the budget service, so re-running an import
// skips them. It holds content hashes and bookkeeping only, never budget
// data.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ImportRecord is one statement line the ledger knows about.
type ImportRecord struct {
	ImportedAt    time.Time
	Hash          string
	SourceFile    string
	TransactionID string
	Description   string
}

// ImportLedger tracks pushed statement lines in a local SQLite database.
type ImportLedger struct {
	db     *sql.DB
	dbPath string
}

// NewImportLedger opens (creating if needed) the ledger database at dbPath.
func NewImportLedger(dbPath string) (*ImportLedger, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("ledger path cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping ledger database: %w", err)
	}

	return &ImportLedger{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (l *ImportLedger) Close() error {
	return l.db.Close()
}

// Seen reports whether a statement line with this hash was already pushed.
func (l *ImportLedger) Seen(ctx context.Context, hash string) (bool, error) {
	if hash == "" {
		return false, fmt.Errorf("hash cannot be empty")
	}

	var count int
	err := l.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM imported_lines WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up hash: %w", err)
	}
	return count > 0, nil
}

// Record stores a pushed statement line. Recording the same hash twice is
// a no-op, so a crash between push and record at worst re-pushes one line.
func (l *ImportLedger) Record(ctx context.Context, rec ImportRecord) error {
	if rec.Hash == "" {
		return fmt.Errorf("hash cannot be empty")
	}

	importedAt := rec.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO imported_lines
			(hash, source_file, transaction_id, description, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Hash, rec.SourceFile, rec.TransactionID, rec.Description, importedAt)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

// Count returns the number of statement lines the ledger tracks.
func (l *ImportLedger) Count(ctx context.Context) (int, error) {
	var count int
	err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM imported_lines").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count imports: %w", err)
	}
	return count, nil
}
