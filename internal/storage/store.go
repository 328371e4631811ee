// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/financehelper/internal/models"
)

// LedgerStore persists one FinanceLedger document per user.
// The store treats the ledger as an opaque whole; it never reads or
// updates individual entries.
type LedgerStore interface {
	// LoadLedger returns the user's ledger. On first access an empty ledger
	// is created and persisted.
	LoadLedger(ctx context.Context, userID string) (*models.FinanceLedger, error)

	// SaveLedger replaces the user's ledger document.
	SaveLedger(ctx context.Context, userID string, ledger *models.FinanceLedger) error

	// ListLedgerOwners returns the IDs of every user with a stored ledger.
	ListLedgerOwners(ctx context.Context) ([]string, error)
}

// UserStorage defines user persistence operations.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has this email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store is the full storage backend used by the server.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	LedgerStore
	UserStorage

	// Close releases any resources held by the store.
	Close() error
}
