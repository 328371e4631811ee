package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/financehelper/internal/models"
)

var asOf = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNormalizeMonthly(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		frequency models.Frequency
		want      float64
	}{
		{name: "monthly unchanged", amount: 12, frequency: models.FrequencyMonthly, want: 12},
		{name: "quarterly divided by 3", amount: 30, frequency: models.FrequencyQuarterly, want: 10},
		{name: "yearly divided by 12", amount: 120, frequency: models.FrequencyYearly, want: 10},
		// Unknown cadences are deliberately ignored rather than rejected.
		{name: "unknown frequency contributes zero", amount: 99, frequency: "weekly", want: 0},
		{name: "empty frequency contributes zero", amount: 99, frequency: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMonthly(tt.amount, tt.frequency)
			if got != tt.want {
				t.Errorf("NormalizeMonthly(%v, %q) = %v, want %v", tt.amount, tt.frequency, got, tt.want)
			}
		})
	}
}

func TestNormalizeMonthly_Linear(t *testing.T) {
	for _, f := range append(models.Frequencies, "biweekly") {
		for _, k := range []float64{0, 0.5, 2, 7} {
			lhs := NormalizeMonthly(k*90, f)
			rhs := k * NormalizeMonthly(90, f)
			if math.Abs(lhs-rhs) > 1e-9 {
				t.Errorf("frequency %q, k=%v: %v != %v", f, k, lhs, rhs)
			}
		}
	}
}

func TestLedgerTotals(t *testing.T) {
	ledger := models.NewLedger()
	ledger.Income.Salary = 2000
	ledger.Income.OtherIncome = []models.IncomeEntry{
		{ID: "1", Amount: 150, Date: models.NewDate(2026, time.March, 2)},
		// Older income still counts towards the total.
		{ID: "2", Amount: 50, Date: models.NewDate(2024, time.July, 9)},
	}
	ledger.Subscriptions = []models.Subscription{
		{ID: "a", Service: "Streaming", Amount: 15, Frequency: models.FrequencyMonthly},
		{ID: "b", Service: "Insurance", Amount: 90, Frequency: models.FrequencyQuarterly},
		{ID: "c", Service: "Domain", Amount: 24, Frequency: models.FrequencyYearly},
	}
	ledger.Expenses = []models.Expense{
		{ID: "x", Amount: 40, Category: models.CategoryFood, Date: models.NewDate(2026, time.March, 1)},
		{ID: "y", Amount: 60, Category: models.CategoryTransport, Date: models.NewDate(2026, time.March, 31)},
		{ID: "z", Amount: 500, Category: models.CategoryShopping, Date: models.NewDate(2026, time.February, 28)},
		{ID: "w", Amount: 70, Category: models.CategoryFood, Date: models.NewDate(2025, time.March, 10)},
		{ID: "v", Amount: 999, Category: models.CategoryFood},
	}

	approx(t, "TotalIncome", TotalIncome(ledger), 2200)
	approx(t, "TotalFixedMonthlyCost", TotalFixedMonthlyCost(ledger), 15+30+2)
	approx(t, "CurrentMonthExpenses", CurrentMonthExpenses(ledger, asOf), 100)
	approx(t, "MonthlyBalance", MonthlyBalance(ledger, asOf), 2200-47-100)
}

func TestExpensesByCategory(t *testing.T) {
	ledger := models.NewLedger()
	ledger.Expenses = []models.Expense{
		{Amount: 10, Category: models.CategoryFood, Date: models.NewDate(2026, time.March, 3)},
		{Amount: 5, Category: models.CategoryFood, Date: models.NewDate(2026, time.March, 4)},
		{Amount: 7, Category: "pets", Date: models.NewDate(2026, time.March, 4)},
		{Amount: 3, Category: "", Date: models.NewDate(2026, time.March, 5)},
		{Amount: 100, Category: models.CategoryHealth, Date: models.NewDate(2026, time.April, 1)},
	}

	got := ExpensesByCategory(ledger, asOf)
	if len(got) != len(models.Categories) {
		t.Fatalf("expected %d categories, got %d", len(models.Categories), len(got))
	}
	approx(t, "food", got[models.CategoryFood], 15)
	approx(t, "other", got[models.CategoryOther], 10)
	approx(t, "health", got[models.CategoryHealth], 0)
}

func TestBalanceAlertLevel(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		want    AlertLevel
	}{
		{name: "zero balance is negative", balance: 0, want: AlertNegative},
		{name: "overspent is negative", balance: -20, want: AlertNegative},
		{name: "below ten percent is danger", balance: 50, want: AlertDanger},
		{name: "exactly ten percent is danger", balance: 100, want: AlertDanger},
		{name: "below twenty percent is warning", balance: 150, want: AlertWarning},
		{name: "exactly twenty percent is warning", balance: 200, want: AlertWarning},
		{name: "comfortable balance is ok", balance: 250, want: AlertOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := models.NewLedger()
			ledger.Income.Salary = 1000
			ledger.Subscriptions = []models.Subscription{
				{Amount: 1000 - tt.balance, Frequency: models.FrequencyMonthly},
			}
			if got := BalanceAlertLevel(ledger, asOf); got != tt.want {
				t.Errorf("BalanceAlertLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonthsUntil(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{name: "same month", target: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "next month", target: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "across year boundary", target: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), want: 10},
		{name: "in the past", target: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsUntil(tt.target, asOf); got != tt.want {
				t.Errorf("MonthsUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSavingsGoalNeed(t *testing.T) {
	ledger := models.NewLedger()
	ledger.Savings.Goals = []models.SavingsGoal{
		{ID: "car", TargetAmount: 1200, TargetDate: models.NewDate(2027, time.March, 1)},
		{ID: "past", TargetAmount: 5000, TargetDate: models.NewDate(2025, time.June, 1)},
		{ID: "now", TargetAmount: 300, TargetDate: models.NewDate(2026, time.March, 28)},
	}

	approx(t, "car", MonthlySavingsNeed(ledger.Savings.Goals[0], asOf), 100)
	if got := MonthlySavingsNeed(ledger.Savings.Goals[1], asOf); got != 0 {
		t.Errorf("past goal need = %v, want exactly 0", got)
	}
	if got := MonthlySavingsNeed(ledger.Savings.Goals[2], asOf); got != 0 {
		t.Errorf("current-month goal need = %v, want exactly 0", got)
	}
	approx(t, "TotalMonthlySavingsGoalNeed", TotalMonthlySavingsGoalNeed(ledger, asOf), 100)
}

func TestGoalProgress(t *testing.T) {
	ledger := models.NewLedger()
	ledger.Savings.Current = 250

	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{name: "partial", target: 1000, want: 25},
		{name: "capped at 100", target: 100, want: 100},
		{name: "zero target is complete", target: 0, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalProgress(ledger, models.SavingsGoal{TargetAmount: tt.target})
			approx(t, "GoalProgress", got, tt.want)
		})
	}
}

func TestInvestmentCapacity(t *testing.T) {
	base := func() *models.FinanceLedger {
		l := models.NewLedger()
		l.Income.Salary = 3000
		l.Subscriptions = []models.Subscription{{Amount: 100, Frequency: models.FrequencyMonthly}}
		l.Expenses = []models.Expense{{Amount: 200, Date: models.NewDate(2026, time.March, 2)}}
		l.Debt = []models.Debt{{RemainingAmount: 5000, MonthlyPayment: 300}}
		l.Savings.Goals = []models.SavingsGoal{
			{TargetAmount: 1200, TargetDate: models.NewDate(2027, time.March, 1)},
		}
		return l
	}

	ledger := base()
	capacity := InvestmentCapacity(ledger, asOf)
	approx(t, "InvestmentCapacity", capacity, 3000-100-200-300-100)

	t.Run("non-increasing in each outflow", func(t *testing.T) {
		mutations := map[string]func(*models.FinanceLedger){
			"fixed cost": func(l *models.FinanceLedger) {
				l.Subscriptions = append(l.Subscriptions, models.Subscription{Amount: 60, Frequency: models.FrequencyYearly})
			},
			"expense": func(l *models.FinanceLedger) {
				l.Expenses = append(l.Expenses, models.Expense{Amount: 80, Date: models.NewDate(2026, time.March, 9)})
			},
			"debt payment": func(l *models.FinanceLedger) { l.Debt[0].MonthlyPayment += 50 },
			"savings goal": func(l *models.FinanceLedger) { l.Savings.Goals[0].TargetAmount += 600 },
		}
		for name, mutate := range mutations {
			l := base()
			mutate(l)
			if got := InvestmentCapacity(l, asOf); got > capacity {
				t.Errorf("%s: capacity rose from %v to %v", name, capacity, got)
			}
		}
	})

	t.Run("floored at zero", func(t *testing.T) {
		l := models.NewLedger()
		l.Subscriptions = []models.Subscription{{Amount: 500, Frequency: models.FrequencyMonthly}}
		if got := InvestmentCapacity(l, asOf); got != 0 {
			t.Errorf("InvestmentCapacity() = %v, want 0", got)
		}
	})
}

func TestSummarize(t *testing.T) {
	ledger := models.NewLedger()
	ledger.Income.Salary = 1000
	ledger.Subscriptions = []models.Subscription{{Amount: 850, Frequency: models.FrequencyMonthly}}
	ledger.Debt = []models.Debt{{RemainingAmount: 400, MonthlyPayment: 20}, {RemainingAmount: 100}}
	ledger.Loaners = []models.Loan{{Person: "Sam", Amount: 75}}
	ledger.Savings.Current = 900
	ledger.Investments.Current = 1500

	s := Summarize(ledger, asOf)
	approx(t, "MonthlyBalance", s.MonthlyBalance, 150)
	if s.Alert != AlertWarning {
		t.Errorf("Alert = %q, want %q", s.Alert, AlertWarning)
	}
	approx(t, "TotalDebt", s.TotalDebt, 500)
	approx(t, "MonthlyDebtPayments", s.MonthlyDebtPayments, 20)
	approx(t, "TotalLoaned", s.TotalLoaned, 75)
	approx(t, "InvestmentCapacity", s.InvestmentCapacity, 130)
	approx(t, "CurrentInvestments", s.CurrentInvestments, 1500)
	if !s.AsOf.Equal(asOf) {
		t.Errorf("AsOf = %v, want %v", s.AsOf, asOf)
	}
}
