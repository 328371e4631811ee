// Package models defines the core domain models for FinanceHelper.
//
// # Ledger
//
// Every user owns exactly one FinanceLedger. The ledger is a single JSON
// document holding income, recurring subscriptions, discrete expenses,
// savings goals, investments, debts, and money lent to other people.
// It is created empty on first access and persisted as a whole on every
// mutation.
//
// # Design Principles
//
// 1. **One document per user**: the storage layer never looks inside the ledger
// 2. **Stable wire names**: JSON field names match the documents the browser app wrote
// 3. **IDs for lookup only**: collections are never ordered by ID
// 4. **Closed enums**: Frequency and Category values outside the known set are
//    kept as-is and handled by an explicit default branch in the calculator
package models
