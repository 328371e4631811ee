package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/financehelper/internal/models"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "financehelper-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("LoadLedger creates an empty ledger on first access", func(t *testing.T) {
		ledger, err := store.LoadLedger(ctx, "user-1")
		if err != nil {
			t.Fatalf("LoadLedger failed: %v", err)
		}
		if ledger.Income.Salary != 0 || len(ledger.Debt) != 0 || ledger.Loaners == nil {
			t.Errorf("expected empty initialized ledger, got %+v", ledger)
		}

		owners, err := store.ListLedgerOwners(ctx)
		if err != nil {
			t.Fatalf("ListLedgerOwners failed: %v", err)
		}
		if len(owners) != 1 || owners[0] != "user-1" {
			t.Errorf("expected [user-1], got %v", owners)
		}
	})

	t.Run("SaveLedger round-trips the document", func(t *testing.T) {
		original := models.NewLedger()
		original.Income.Salary = 2400
		original.Expenses = append(original.Expenses, models.Expense{
			ID:          "e1",
			Description: "Groceries",
			Amount:      54.3,
			Category:    models.CategoryFood,
			Date:        models.NewDate(2026, time.February, 3),
		})
		original.Debt = append(original.Debt, models.Debt{
			ID: "d1", Description: "Car", InitialAmount: 9000, RemainingAmount: 4000, InterestRate: 3.9, MonthlyPayment: 250,
		})

		if err := store.SaveLedger(ctx, "user-2", original); err != nil {
			t.Fatalf("SaveLedger failed: %v", err)
		}

		retrieved, err := store.LoadLedger(ctx, "user-2")
		if err != nil {
			t.Fatalf("LoadLedger failed: %v", err)
		}
		if retrieved.Income.Salary != 2400 {
			t.Errorf("Salary mismatch: got %v, want 2400", retrieved.Income.Salary)
		}
		if len(retrieved.Expenses) != 1 || !retrieved.Expenses[0].Date.Equal(original.Expenses[0].Date.Time) {
			t.Errorf("Expenses mismatch: got %+v", retrieved.Expenses)
		}
		if len(retrieved.Debt) != 1 || retrieved.Debt[0].RemainingAmount != 4000 {
			t.Errorf("Debt mismatch: got %+v", retrieved.Debt)
		}
	})

	t.Run("SaveLedger overwrites the previous document", func(t *testing.T) {
		ledger := models.NewLedger()
		ledger.Savings.Current = 10
		if err := store.SaveLedger(ctx, "user-3", ledger); err != nil {
			t.Fatalf("SaveLedger failed: %v", err)
		}
		ledger.Savings.Current = 20
		if err := store.SaveLedger(ctx, "user-3", ledger); err != nil {
			t.Fatalf("SaveLedger failed: %v", err)
		}

		retrieved, err := store.LoadLedger(ctx, "user-3")
		if err != nil {
			t.Fatalf("LoadLedger failed: %v", err)
		}
		if retrieved.Savings.Current != 20 {
			t.Errorf("Savings mismatch: got %v, want 20", retrieved.Savings.Current)
		}
	})

	t.Run("users", func(t *testing.T) {
		user := models.NewUser("ada@example.com", "Ada", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		byEmail, err := store.GetUserByEmail(ctx, "ada@example.com")
		if err != nil || byEmail == nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail.ID != user.ID || byEmail.DisplayName != "Ada" {
			t.Errorf("user mismatch: got %+v", byEmail)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil || byID == nil || byID.Email != user.Email {
			t.Fatalf("GetUserByID = %+v, %v", byID, err)
		}

		missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil || missing != nil {
			t.Errorf("expected nil, nil for unknown email, got %+v, %v", missing, err)
		}

		if err := store.CreateUser(ctx, models.NewUser("ada@example.com", "Ada 2", "hash")); err == nil {
			t.Error("expected duplicate email to fail")
		}
	})
}
