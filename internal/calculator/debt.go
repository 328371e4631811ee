package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/financehelper/internal/models"
)

// MaxPayoffMonths caps the amortization loop at 100 years so debts whose
// payment never covers the accruing interest still terminate.
const MaxPayoffMonths = 1200

// PayoffEstimate is the outcome of amortizing one debt at its current payment.
type PayoffEstimate struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
}

// Capped reports whether the simulation stopped at MaxPayoffMonths rather
// than by paying the debt off.
func (p PayoffEstimate) Capped() bool {
	return p.Months >= MaxPayoffMonths
}

// AmortizationSchedule simulates monthly compounding: each month interest on
// the balance is accrued, then the payment is taken from balance plus interest.
func AmortizationSchedule(debt models.Debt) PayoffEstimate {
	if debt.MonthlyPayment <= 0 || debt.RemainingAmount <= 0 {
		return PayoffEstimate{}
	}

	rate := debt.InterestRate / 100 / 12
	balance := debt.RemainingAmount
	var est PayoffEstimate

	for balance > 0 && est.Months < MaxPayoffMonths {
		interest := balance * rate
		est.TotalInterest += interest
		balance = balance + interest - debt.MonthlyPayment
		est.Months++
	}
	return est
}

// PayoffStrategies holds the same debts in two repayment priorities.
type PayoffStrategies struct {
	// Avalanche orders debts by interest rate, highest first.
	Avalanche []models.Debt `json:"avalanche"`

	// Snowball orders debts by remaining amount, smallest first.
	Snowball []models.Debt `json:"snowball"`
}

// RankDebtsByStrategy orders independent copies of debts for the avalanche
// and snowball strategies. Equal keys keep their input order. The input
// slice is not modified.
func RankDebtsByStrategy(debts []models.Debt) PayoffStrategies {
	avalanche := slices.Clone(debts)
	snowball := slices.Clone(debts)
	if avalanche == nil {
		avalanche = []models.Debt{}
		snowball = []models.Debt{}
	}

	slices.SortStableFunc(avalanche, func(a, b models.Debt) int {
		return cmp.Compare(b.InterestRate, a.InterestRate)
	})
	slices.SortStableFunc(snowball, func(a, b models.Debt) int {
		return cmp.Compare(a.RemainingAmount, b.RemainingAmount)
	})

	return PayoffStrategies{Avalanche: avalanche, Snowball: snowball}
}
