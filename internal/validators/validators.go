// Package validators checks user input before it reaches the ledger.
// The calculator itself never validates; anything that passes here is
// within the domain the projections are defined for.
package validators

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/financehelper/internal/models"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Amount checks that value is a finite, non-negative amount.
func Amount(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalid("%s must be a finite number", name)
	}
	if value < 0 {
		return invalid("%s must be ≥ 0", name)
	}
	return nil
}

// PositiveAmount checks that value is finite and strictly positive.
func PositiveAmount(name string, value float64) error {
	if err := Amount(name, value); err != nil {
		return err
	}
	if value == 0 {
		return invalid("%s must be > 0", name)
	}
	return nil
}

// Text checks that a required label is not blank.
func Text(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", name)
	}
	return nil
}

// Frequency accepts only the recognized subscription cadences.
func Frequency(f models.Frequency) error {
	for _, known := range models.Frequencies {
		if f == known {
			return nil
		}
	}
	return invalid("frequency must be one of monthly, quarterly, yearly (got %q)", f)
}

// Category accepts only the recognized expense categories.
func Category(c models.Category) error {
	for _, known := range models.Categories {
		if c == known {
			return nil
		}
	}
	return invalid("unknown category %q", c)
}

// RequiredDate rejects the zero date.
func RequiredDate(name string, d models.Date) error {
	if d.IsZero() {
		return invalid("%s is required", name)
	}
	return nil
}

// IncomeEntry validates an irregular income entry.
func IncomeEntry(e models.IncomeEntry) error {
	return errors.Join(
		Text("description", e.Description),
		Amount("amount", e.Amount),
		RequiredDate("date", e.Date),
	)
}

// Subscription validates a recurring cost.
func Subscription(s models.Subscription) error {
	return errors.Join(
		Text("service", s.Service),
		Amount("amount", s.Amount),
		Frequency(s.Frequency),
	)
}

// Expense validates a discrete cost.
func Expense(e models.Expense) error {
	return errors.Join(
		Text("description", e.Description),
		Amount("amount", e.Amount),
		Category(e.Category),
		RequiredDate("date", e.Date),
	)
}

// SavingsGoal validates a goal. The target must be positive so progress
// and monthly pacing are well defined.
func SavingsGoal(g models.SavingsGoal) error {
	return errors.Join(
		Text("description", g.Description),
		PositiveAmount("targetAmount", g.TargetAmount),
		RequiredDate("targetDate", g.TargetDate),
		Amount("currentAmount", g.CurrentAmount),
	)
}

// Debt validates a debt, including 0 ≤ remaining ≤ initial.
func Debt(d models.Debt) error {
	err := errors.Join(
		Text("description", d.Description),
		Amount("initialAmount", d.InitialAmount),
		Amount("remainingAmount", d.RemainingAmount),
		Amount("interestRate", d.InterestRate),
		Amount("monthlyPayment", d.MonthlyPayment),
	)
	if err != nil {
		return err
	}
	if d.RemainingAmount > d.InitialAmount {
		return invalid("remainingAmount must not exceed initialAmount")
	}
	return nil
}

// Loan validates money lent to someone.
func Loan(l models.Loan) error {
	return errors.Join(
		Text("person", l.Person),
		PositiveAmount("amount", l.Amount),
		RequiredDate("date", l.Date),
	)
}

// MaxGrowthYears bounds growth simulations.
const MaxGrowthYears = 100

// Growth validates the inputs of an investment growth simulation.
func Growth(initial, monthly float64, years int, annualRate float64) error {
	err := errors.Join(
		Amount("initialAmount", initial),
		Amount("monthlyContribution", monthly),
		Amount("annualRate", annualRate),
	)
	if err != nil {
		return err
	}
	if years < 1 || years > MaxGrowthYears {
		return invalid("years must be between 1 and %d", MaxGrowthYears)
	}
	return nil
}
