package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/metrics"
	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/internal/notify"
)

// Summary computes the dashboard figures. A zero asOf means now.
func (s *LedgerService) Summary(ctx context.Context, userID string, asOf time.Time) (out calculator.Summary, err error) {
	asOf = s.resolve(asOf)
	err = s.view(ctx, userID, "summary", func(l *models.FinanceLedger) error {
		out = calculator.Summarize(l, asOf)
		return nil
	})
	if err == nil {
		metrics.BalanceAlerts.WithLabelValues(string(out.Alert)).Inc()
	}
	return out, err
}

// DebtPayoff pairs a debt with its amortization estimate.
type DebtPayoff struct {
	Debt     models.Debt               `json:"debt"`
	Estimate calculator.PayoffEstimate `json:"estimate"`

	// Capped is set when the payment never clears the debt within the
	// simulation horizon.
	Capped bool `json:"capped"`
}

// PayoffReport is the debt page: per-debt estimates plus both strategies.
type PayoffReport struct {
	Debts      []DebtPayoff                `json:"debts"`
	Strategies calculator.PayoffStrategies `json:"strategies"`
}

// Payoff estimates how long each debt takes to repay and ranks the debts.
func (s *LedgerService) Payoff(ctx context.Context, userID string) (out PayoffReport, err error) {
	err = s.view(ctx, userID, "payoff", func(l *models.FinanceLedger) error {
		out.Debts = make([]DebtPayoff, 0, len(l.Debt))
		for _, d := range l.Debt {
			est := calculator.AmortizationSchedule(d)
			out.Debts = append(out.Debts, DebtPayoff{Debt: d, Estimate: est, Capped: est.Capped()})
		}
		out.Strategies = calculator.RankDebtsByStrategy(l.Debt)
		return nil
	})
	return out, err
}

// GoalStatus is a savings goal with its pacing figures.
type GoalStatus struct {
	Goal            models.SavingsGoal `json:"goal"`
	Progress        float64            `json:"progress"`
	MonthlyNeed     float64            `json:"monthlyNeed"`
	MonthsRemaining int                `json:"monthsRemaining"`
}

// Goals returns every savings goal with progress and monthly need, nearest
// target date first.
func (s *LedgerService) Goals(ctx context.Context, userID string, asOf time.Time) (out []GoalStatus, err error) {
	asOf = s.resolve(asOf)
	err = s.view(ctx, userID, "goals", func(l *models.FinanceLedger) error {
		out = make([]GoalStatus, 0, len(l.Savings.Goals))
		for _, g := range l.Savings.Goals {
			out = append(out, GoalStatus{
				Goal:            g,
				Progress:        calculator.GoalProgress(l, g),
				MonthlyNeed:     calculator.MonthlySavingsNeed(g, asOf),
				MonthsRemaining: calculator.MonthsUntil(g.TargetDate.Time, asOf),
			})
		}
		slices.SortStableFunc(out, func(a, b GoalStatus) int {
			return a.Goal.TargetDate.Compare(b.Goal.TargetDate.Time)
		})
		return nil
	})
	return out, err
}

// Expenses returns the expenses, most recent first.
func (s *LedgerService) Expenses(ctx context.Context, userID string) (out []models.Expense, err error) {
	err = s.view(ctx, userID, "expenses", func(l *models.FinanceLedger) error {
		out = slices.Clone(l.Expenses)
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return b.Date.Compare(a.Date.Time)
		})
		return nil
	})
	return out, err
}

// Debts returns the debts, largest remaining amount first.
func (s *LedgerService) Debts(ctx context.Context, userID string) (out []models.Debt, err error) {
	err = s.view(ctx, userID, "debts", func(l *models.FinanceLedger) error {
		out = slices.Clone(l.Debt)
		slices.SortStableFunc(out, func(a, b models.Debt) int {
			return cmp.Compare(b.RemainingAmount, a.RemainingAmount)
		})
		return nil
	})
	return out, err
}

// Loans returns the loans, most recent first.
func (s *LedgerService) Loans(ctx context.Context, userID string) (out []models.Loan, err error) {
	err = s.view(ctx, userID, "loans", func(l *models.FinanceLedger) error {
		out = slices.Clone(l.Loaners)
		slices.SortStableFunc(out, func(a, b models.Loan) int {
			return b.Date.Compare(a.Date.Time)
		})
		return nil
	})
	return out, err
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Amount   float64         `json:"amount"`
}

// Categories returns the current month's spending per category, in display
// order, including categories with no spending.
func (s *LedgerService) Categories(ctx context.Context, userID string, asOf time.Time) (out []CategoryTotal, err error) {
	asOf = s.resolve(asOf)
	err = s.view(ctx, userID, "categories", func(l *models.FinanceLedger) error {
		totals := calculator.ExpensesByCategory(l, asOf)
		out = make([]CategoryTotal, 0, len(models.Categories))
		for _, c := range models.Categories {
			out = append(out, CategoryTotal{Category: c, Amount: totals[c]})
		}
		return nil
	})
	return out, err
}

// Reminder is a composed loan reminder.
type Reminder struct {
	Loan    models.Loan `json:"loan"`
	Subject string      `json:"subject"`
	Text    string      `json:"text"`
	Sent    bool        `json:"sent"`
}

// LoanReminder composes a reminder for the loan. When to is set and a mailer
// is configured the reminder is also emailed.
func (s *LedgerService) LoanReminder(ctx context.Context, userID, id, to string) (out Reminder, err error) {
	err = s.view(ctx, userID, "loan_reminder", func(l *models.FinanceLedger) error {
		i := indexByID(l.Loaners, id, loanID)
		if i < 0 {
			return notFound("loan", id)
		}
		out.Loan = l.Loaners[i]
		out.Subject, out.Text = notify.LoanReminder(out.Loan)
		return nil
	})
	if err != nil || to == "" || s.mailer == nil {
		return out, err
	}

	sendErr := s.mailer.Send(ctx, to, out.Subject, out.Text)
	metrics.RemindersSent.WithLabelValues(metrics.Status(sendErr)).Inc()
	if sendErr != nil {
		return out, fmt.Errorf("failed to send reminder: %w", sendErr)
	}
	out.Sent = true
	return out, nil
}
