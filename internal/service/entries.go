package service

import (
	"context"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/internal/validators"
)

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

// add assigns a fresh ID to v after validating it and appends it to *items.
func add[T any](items *[]T, v T, validate func(T) error, setID func(*T, string)) (T, error) {
	if err := validate(v); err != nil {
		var zero T
		return zero, invalidInput(err)
	}
	setID(&v, uuid.New().String())
	*items = append(*items, v)
	return v, nil
}

// update replaces the entry with the given ID, keeping the ID.
func update[T any](items []T, kind, id string, v T, validate func(T) error, idOf func(T) string, setID func(*T, string)) (T, error) {
	var zero T
	i := indexByID(items, id, idOf)
	if i < 0 {
		return zero, notFound(kind, id)
	}
	if err := validate(v); err != nil {
		return zero, invalidInput(err)
	}
	setID(&v, id)
	items[i] = v
	return v, nil
}

// remove deletes the entry with the given ID and returns it.
func remove[T any](items *[]T, kind, id string, idOf func(T) string) (T, error) {
	i := indexByID(*items, id, idOf)
	if i < 0 {
		var zero T
		return zero, notFound(kind, id)
	}
	removed := (*items)[i]
	*items = slices.Delete(*items, i, i+1)
	return removed, nil
}

func incomeID(e models.IncomeEntry) string { return e.ID }
func subscriptionID(e models.Subscription) string { return e.ID }
func expenseID(e models.Expense) string { return e.ID }
func goalID(e models.SavingsGoal) string { return e.ID }
func debtID(e models.Debt) string { return e.ID }
func loanID(e models.Loan) string { return e.ID }

func setIncomeID(e *models.IncomeEntry, id string) { e.ID = id }
func setSubscriptionID(e *models.Subscription, id string) { e.ID = id }
func setExpenseID(e *models.Expense, id string) { e.ID = id }
func setGoalID(e *models.SavingsGoal, id string) { e.ID = id }
func setDebtID(e *models.Debt, id string) { e.ID = id }
func setLoanID(e *models.Loan, id string) { e.ID = id }

// SetSalary replaces the recurring monthly salary.
func (s *LedgerService) SetSalary(ctx context.Context, userID string, salary float64) error {
	return s.mutate(ctx, userID, "set_salary", func(l *models.FinanceLedger) error {
		if err := validators.Amount("salary", salary); err != nil {
			return invalidInput(err)
		}
		l.Income.Salary = salary
		return nil
	})
}

// AddIncome records an irregular income entry.
func (s *LedgerService) AddIncome(ctx context.Context, userID string, e models.IncomeEntry) (out models.IncomeEntry, err error) {
	err = s.mutate(ctx, userID, "add_income", func(l *models.FinanceLedger) error {
		out, err = add(&l.Income.OtherIncome, e, validators.IncomeEntry, setIncomeID)
		return err
	})
	return out, err
}

// UpdateIncome replaces an income entry.
func (s *LedgerService) UpdateIncome(ctx context.Context, userID, id string, e models.IncomeEntry) (out models.IncomeEntry, err error) {
	err = s.mutate(ctx, userID, "update_income", func(l *models.FinanceLedger) error {
		out, err = update(l.Income.OtherIncome, "income", id, e, validators.IncomeEntry, incomeID, setIncomeID)
		return err
	})
	return out, err
}

// DeleteIncome removes an income entry.
func (s *LedgerService) DeleteIncome(ctx context.Context, userID, id string) error {
	return s.mutate(ctx, userID, "delete_income", func(l *models.FinanceLedger) error {
		_, err := remove(&l.Income.OtherIncome, "income", id, incomeID)
		return err
	})
}

// AddSubscription records a recurring cost.
func (s *LedgerService) AddSubscription(ctx context.Context, userID string, sub models.Subscription) (out models.Subscription, err error) {
	err = s.mutate(ctx, userID, "add_subscription", func(l *models.FinanceLedger) error {
		out, err = add(&l.Subscriptions, sub, validators.Subscription, setSubscriptionID)
		return err
	})
	return out, err
}

// UpdateSubscription replaces a subscription.
func (s *LedgerService) UpdateSubscription(ctx context.Context, userID, id string, sub models.Subscription) (out models.Subscription, err error) {
	err = s.mutate(ctx, userID, "update_subscription", func(l *models.FinanceLedger) error {
		out, err = update(l.Subscriptions, "subscription", id, sub, validators.Subscription, subscriptionID, setSubscriptionID)
		return err
	})
	return out, err
}

// DeleteSubscription removes a subscription.
func (s *LedgerService) DeleteSubscription(ctx context.Context, userID, id string) error {
	return s.mutate(ctx, userID, "delete_subscription", func(l *models.FinanceLedger) error {
		_, err := remove(&l.Subscriptions, "subscription", id, subscriptionID)
		return err
	})
}

// AddExpense records a discrete expense.
func (s *LedgerService) AddExpense(ctx context.Context, userID string, e models.Expense) (out models.Expense, err error) {
	err = s.mutate(ctx, userID, "add_expense", func(l *models.FinanceLedger) error {
		out, err = add(&l.Expenses, e, validators.Expense, setExpenseID)
		return err
	})
	return out, err
}

// UpdateExpense replaces an expense.
func (s *LedgerService) UpdateExpense(ctx context.Context, userID, id string, e models.Expense) (out models.Expense, err error) {
	err = s.mutate(ctx, userID, "update_expense", func(l *models.FinanceLedger) error {
		out, err = update(l.Expenses, "expense", id, e, validators.Expense, expenseID, setExpenseID)
		return err
	})
	return out, err
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, userID, id string) error {
	return s.mutate(ctx, userID, "delete_expense", func(l *models.FinanceLedger) error {
		_, err := remove(&l.Expenses, "expense", id, expenseID)
		return err
	})
}

// SetSavings replaces the current savings balance.
func (s *LedgerService) SetSavings(ctx context.Context, userID string, current float64) error {
	return s.mutate(ctx, userID, "set_savings", func(l *models.FinanceLedger) error {
		if err := validators.Amount("current", current); err != nil {
			return invalidInput(err)
		}
		l.Savings.Current = current
		return nil
	})
}

// AddGoal records a savings goal.
func (s *LedgerService) AddGoal(ctx context.Context, userID string, g models.SavingsGoal) (out models.SavingsGoal, err error) {
	err = s.mutate(ctx, userID, "add_goal", func(l *models.FinanceLedger) error {
		out, err = add(&l.Savings.Goals, g, validators.SavingsGoal, setGoalID)
		return err
	})
	return out, err
}

// UpdateGoal replaces a savings goal.
func (s *LedgerService) UpdateGoal(ctx context.Context, userID, id string, g models.SavingsGoal) (out models.SavingsGoal, err error) {
	err = s.mutate(ctx, userID, "update_goal", func(l *models.FinanceLedger) error {
		out, err = update(l.Savings.Goals, "goal", id, g, validators.SavingsGoal, goalID, setGoalID)
		return err
	})
	return out, err
}

// DeleteGoal removes a savings goal.
func (s *LedgerService) DeleteGoal(ctx context.Context, userID, id string) error {
	return s.mutate(ctx, userID, "delete_goal", func(l *models.FinanceLedger) error {
		_, err := remove(&l.Savings.Goals, "goal", id, goalID)
		return err
	})
}

// SetInvestments replaces the currently invested amount. The monthly
// figure is derived and cannot be set.
func (s *LedgerService) SetInvestments(ctx context.Context, userID string, current float64) error {
	return s.mutate(ctx, userID, "set_investments", func(l *models.FinanceLedger) error {
		if err := validators.Amount("current", current); err != nil {
			return invalidInput(err)
		}
		l.Investments.Current = current
		return nil
	})
}

// AddDebt records money owed.
func (s *LedgerService) AddDebt(ctx context.Context, userID string, d models.Debt) (out models.Debt, err error) {
	err = s.mutate(ctx, userID, "add_debt", func(l *models.FinanceLedger) error {
		out, err = add(&l.Debt, d, validators.Debt, setDebtID)
		return err
	})
	return out, err
}

// UpdateDebt replaces a debt.
func (s *LedgerService) UpdateDebt(ctx context.Context, userID, id string, d models.Debt) (out models.Debt, err error) {
	err = s.mutate(ctx, userID, "update_debt", func(l *models.FinanceLedger) error {
		out, err = update(l.Debt, "debt", id, d, validators.Debt, debtID, setDebtID)
		return err
	})
	return out, err
}

// DeleteDebt removes a debt.
func (s *LedgerService) DeleteDebt(ctx context.Context, userID, id string) error {
	return s.mutate(ctx, userID, "delete_debt", func(l *models.FinanceLedger) error {
		_, err := remove(&l.Debt, "debt", id, debtID)
		return err
	})
}

// DebtPayment is the outcome of PayDebt.
type DebtPayment struct {
	Debt models.Debt `json:"debt"`

	// Paid is the amount actually applied, at most the remaining amount.
	Paid    float64 `json:"paid"`
	Removed bool    `json:"removed"`
}

// PayDebt reduces a debt's remaining amount, never below zero. A debt that
// reaches zero is removed when removeWhenPaid is set.
func (s *LedgerService) PayDebt(ctx context.Context, userID, id string, amount float64, removeWhenPaid bool) (out DebtPayment, err error) {
	err = s.mutate(ctx, userID, "pay_debt", func(l *models.FinanceLedger) error {
		if err := validators.PositiveAmount("amount", amount); err != nil {
			return invalidInput(err)
		}
		i := indexByID(l.Debt, id, debtID)
		if i < 0 {
			return notFound("debt", id)
		}

		d := &l.Debt[i]
		out.Paid = math.Min(amount, d.RemainingAmount)
		d.RemainingAmount = math.Max(0, d.RemainingAmount-amount)
		out.Debt = *d

		if d.RemainingAmount == 0 && removeWhenPaid {
			l.Debt = slices.Delete(l.Debt, i, i+1)
			out.Removed = true
		}
		return nil
	})
	return out, err
}

// AddLoan records money lent to someone.
func (s *LedgerService) AddLoan(ctx context.Context, userID string, loan models.Loan) (out models.Loan, err error) {
	err = s.mutate(ctx, userID, "add_loan", func(l *models.FinanceLedger) error {
		out, err = add(&l.Loaners, loan, validators.Loan, setLoanID)
		return err
	})
	return out, err
}

// UpdateLoan replaces a loan.
func (s *LedgerService) UpdateLoan(ctx context.Context, userID, id string, loan models.Loan) (out models.Loan, err error) {
	err = s.mutate(ctx, userID, "update_loan", func(l *models.FinanceLedger) error {
		out, err = update(l.Loaners, "loan", id, loan, validators.Loan, loanID, setLoanID)
		return err
	})
	return out, err
}

// DeleteLoan removes a loan.
func (s *LedgerService) DeleteLoan(ctx context.Context, userID, id string) error {
	return s.mutate(ctx, userID, "delete_loan", func(l *models.FinanceLedger) error {
		_, err := remove(&l.Loaners, "loan", id, loanID)
		return err
	})
}

// MarkLoanRepaid removes a repaid loan from the ledger and returns it.
func (s *LedgerService) MarkLoanRepaid(ctx context.Context, userID, id string) (out models.Loan, err error) {
	err = s.mutate(ctx, userID, "repay_loan", func(l *models.FinanceLedger) error {
		out, err = remove(&l.Loaners, "loan", id, loanID)
		return err
	})
	return out, err
}
