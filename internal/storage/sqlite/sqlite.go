// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection, not just the first.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func newID() string {
	return uuid.New().String()
}

func unixNow() int64 {
	return time.Now().Unix()
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// replaceSplit rewrites the split rows owned by ownerID.
// table and ownerColumn are constants chosen by the caller.
func replaceSplit(ctx context.Context, ex execer, table, ownerColumn, ownerID string, split models.Split) error {
	if _, err := ex.ExecContext(ctx, "DELETE FROM "+table+" WHERE "+ownerColumn+" = ?", ownerID); err != nil {
		return fmt.Errorf("failed to clear split: %w", err)
	}
	for member, share := range split {
		_, err := ex.ExecContext(ctx,
			"INSERT INTO "+table+" ("+ownerColumn+", member, share) VALUES (?, ?, ?)",
			ownerID, member, share.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert split share for %s: %w", member, err)
		}
	}
	return nil
}

// loadSplits reads split rows selected by query (owner, member, share) and
// groups them by owner ID.
func (s *SQLiteStore) loadSplits(ctx context.Context, query string, args ...any) (map[string]models.Split, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	splits := make(map[string]models.Split)
	for rows.Next() {
		var owner, member string
		var share decimal.Decimal
		if err := rows.Scan(&owner, &member, &share); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if splits[owner] == nil {
			splits[owner] = models.Split{}
		}
		splits[owner][member] = share
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

// checkAffected turns an UPDATE or DELETE that touched no rows into ErrNotFound.
func checkAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}
