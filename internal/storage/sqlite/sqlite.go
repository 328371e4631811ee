// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/internal/storage"
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
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadLedger retrieves the user's ledger, creating an empty one on first access.
func (s *SQLiteStore) LoadLedger(ctx context.Context, userID string) (*models.FinanceLedger, error) {
	var document string
	err := s.db.QueryRowContext(ctx,
		"SELECT document FROM ledgers WHERE user_id = ?",
		userID,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		ledger := models.NewLedger()
		if err := s.insertLedger(ctx, userID, ledger); err != nil {
			return nil, err
		}
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}

	ledger := models.NewLedger()
	if err := json.Unmarshal([]byte(document), ledger); err != nil {
		return nil, fmt.Errorf("failed to decode ledger for user %s: %w", userID, err)
	}
	ledger.Normalize()
	return ledger, nil
}

// SaveLedger replaces the user's ledger document.
func (s *SQLiteStore) SaveLedger(ctx context.Context, userID string, ledger *models.FinanceLedger) error {
	ledger.Normalize()
	document, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ledgers (user_id, document, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		userID, string(document), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// ListLedgerOwners returns every user ID that has a ledger, in stable order.
func (s *SQLiteStore) ListLedgerOwners(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT user_id FROM ledgers ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ledger owner: %w", err)
		}
		owners = append(owners, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledgers: %w", err)
	}
	return owners, nil
}

func (s *SQLiteStore) insertLedger(ctx context.Context, userID string, ledger *models.FinanceLedger) error {
	document, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO ledgers (user_id, document, created_at, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT(user_id) DO NOTHING",
		userID, string(document), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create ledger: %w", err)
	}
	return nil
}
