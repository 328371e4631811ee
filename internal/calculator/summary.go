package calculator

import (
	"time"

	"github.com/mmynk/financehelper/internal/models"
)

// Summary is the dashboard figure set for one ledger at one instant.
type Summary struct {
	AsOf                 time.Time  `json:"asOf"`
	TotalIncome          float64    `json:"totalIncome"`
	FixedMonthlyCost     float64    `json:"fixedMonthlyCost"`
	CurrentMonthExpenses float64    `json:"currentMonthExpenses"`
	MonthlyBalance       float64    `json:"monthlyBalance"`
	Alert                AlertLevel `json:"alert"`
	TotalDebt            float64    `json:"totalDebt"`
	MonthlyDebtPayments  float64    `json:"monthlyDebtPayments"`
	TotalLoaned          float64    `json:"totalLoaned"`
	CurrentSavings       float64    `json:"currentSavings"`
	SavingsGoalNeed      float64    `json:"savingsGoalNeed"`
	InvestmentCapacity   float64    `json:"investmentCapacity"`
	CurrentInvestments   float64    `json:"currentInvestments"`
}

// Summarize computes every dashboard figure for the ledger as of asOf.
func Summarize(ledger *models.FinanceLedger, asOf time.Time) Summary {
	income := TotalIncome(ledger)
	balance := MonthlyBalance(ledger, asOf)

	return Summary{
		AsOf:                 asOf,
		TotalIncome:          income,
		FixedMonthlyCost:     TotalFixedMonthlyCost(ledger),
		CurrentMonthExpenses: CurrentMonthExpenses(ledger, asOf),
		MonthlyBalance:       balance,
		Alert:                alertFor(income, balance),
		TotalDebt:            TotalDebt(ledger),
		MonthlyDebtPayments:  TotalMonthlyDebtPayments(ledger),
		TotalLoaned:          TotalLoaned(ledger),
		CurrentSavings:       ledger.Savings.Current,
		SavingsGoalNeed:      TotalMonthlySavingsGoalNeed(ledger, asOf),
		InvestmentCapacity:   InvestmentCapacity(ledger, asOf),
		CurrentInvestments:   ledger.Investments.Current,
	}
}
