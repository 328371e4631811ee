// Package calculator derives point-in-time and projected figures from a
// FinanceLedger. Every function is pure: it reads the ledger, never mutates
// it, and takes the reference instant explicitly instead of reading the clock.
package calculator

import (
	"time"

	"github.com/mmynk/financehelper/internal/models"
)

// NormalizeMonthly converts a recurring amount to its monthly equivalent.
// Unrecognized frequencies contribute 0.
func NormalizeMonthly(amount float64, frequency models.Frequency) float64 {
	switch frequency {
	case models.FrequencyMonthly:
		return amount
	case models.FrequencyQuarterly:
		return amount / 3
	case models.FrequencyYearly:
		return amount / 12
	default:
		return 0
	}
}

// TotalIncome returns the salary plus every other-income entry.
// Other income is not restricted to the current month.
func TotalIncome(ledger *models.FinanceLedger) float64 {
	total := ledger.Income.Salary
	for _, entry := range ledger.Income.OtherIncome {
		total += entry.Amount
	}
	return total
}

// TotalFixedMonthlyCost sums the monthly equivalent of all subscriptions.
func TotalFixedMonthlyCost(ledger *models.FinanceLedger) float64 {
	var total float64
	for _, sub := range ledger.Subscriptions {
		total += NormalizeMonthly(sub.Amount, sub.Frequency)
	}
	return total
}

// CurrentMonthExpenses sums expenses dated in the calendar month of asOf.
// Expenses without a date are skipped.
func CurrentMonthExpenses(ledger *models.FinanceLedger, asOf time.Time) float64 {
	var total float64
	for _, exp := range ledger.Expenses {
		if sameMonth(exp.Date, asOf) {
			total += exp.Amount
		}
	}
	return total
}

// MonthlyBalance is income minus fixed costs minus this month's expenses.
// The result may be negative.
func MonthlyBalance(ledger *models.FinanceLedger, asOf time.Time) float64 {
	return TotalIncome(ledger) - TotalFixedMonthlyCost(ledger) - CurrentMonthExpenses(ledger, asOf)
}

// TotalMonthlyDebtPayments sums the scheduled monthly payment of every debt.
func TotalMonthlyDebtPayments(ledger *models.FinanceLedger) float64 {
	var total float64
	for _, d := range ledger.Debt {
		total += d.MonthlyPayment
	}
	return total
}

// TotalDebt sums the remaining amount of every debt.
func TotalDebt(ledger *models.FinanceLedger) float64 {
	var total float64
	for _, d := range ledger.Debt {
		total += d.RemainingAmount
	}
	return total
}

// TotalLoaned sums the money currently lent out.
func TotalLoaned(ledger *models.FinanceLedger) float64 {
	var total float64
	for _, l := range ledger.Loaners {
		total += l.Amount
	}
	return total
}

// ExpensesByCategory breaks this month's expenses down by category.
// Every known category is present in the result. Expenses with an empty or
// unknown category are booked under "other".
func ExpensesByCategory(ledger *models.FinanceLedger, asOf time.Time) map[models.Category]float64 {
	totals := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.Categories {
		totals[c] = 0
	}

	for _, exp := range ledger.Expenses {
		if !sameMonth(exp.Date, asOf) {
			continue
		}
		totals[categoryOf(exp.Category)] += exp.Amount
	}
	return totals
}

func categoryOf(c models.Category) models.Category {
	switch c {
	case models.CategoryFood, models.CategoryTransport, models.CategoryLeisure,
		models.CategoryShopping, models.CategoryHealth, models.CategoryOther:
		return c
	default:
		return models.CategoryOther
	}
}

func sameMonth(d models.Date, asOf time.Time) bool {
	if d.IsZero() {
		return false
	}
	return d.Year() == asOf.Year() && d.Month() == asOf.Month()
}
