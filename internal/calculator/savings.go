package calculator

import (
	"math"
	"time"

	"github.com/mmynk/financehelper/internal/models"
)

// MonthsUntil counts calendar months from asOf to target, ignoring the day
// of month. The result is zero or negative once the target month has arrived.
func MonthsUntil(target, asOf time.Time) int {
	return (target.Year()-asOf.Year())*12 + int(target.Month()) - int(asOf.Month())
}

// MonthlySavingsNeed spreads a goal's target evenly over the remaining months.
// Goals whose target month has passed need nothing more.
func MonthlySavingsNeed(goal models.SavingsGoal, asOf time.Time) float64 {
	months := MonthsUntil(goal.TargetDate.Time, asOf)
	if months <= 0 {
		return 0
	}
	return goal.TargetAmount / float64(months)
}

// TotalMonthlySavingsGoalNeed sums the monthly need of every goal.
func TotalMonthlySavingsGoalNeed(ledger *models.FinanceLedger, asOf time.Time) float64 {
	var total float64
	for _, goal := range ledger.Savings.Goals {
		total += MonthlySavingsNeed(goal, asOf)
	}
	return total
}

// GoalProgress reports current savings as a percentage of the goal target,
// capped at 100. A goal with no positive target counts as complete.
func GoalProgress(ledger *models.FinanceLedger, goal models.SavingsGoal) float64 {
	if goal.TargetAmount <= 0 {
		return 100
	}
	return math.Min(100, ledger.Savings.Current/goal.TargetAmount*100)
}

// InvestmentCapacity is what remains of income after fixed costs, this
// month's expenses, debt service and savings-goal contributions, floored at 0.
func InvestmentCapacity(ledger *models.FinanceLedger, asOf time.Time) float64 {
	available := TotalIncome(ledger) -
		TotalFixedMonthlyCost(ledger) -
		CurrentMonthExpenses(ledger, asOf) -
		TotalMonthlyDebtPayments(ledger) -
		TotalMonthlySavingsGoalNeed(ledger, asOf)
	return math.Max(0, available)
}
