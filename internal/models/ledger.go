package models

// Frequency is the billing cadence of a subscription.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Frequencies lists the recognized subscription cadences.
var Frequencies = []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyYearly}

// Category classifies a discrete expense.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryLeisure   Category = "leisure"
	CategoryShopping  Category = "shopping"
	CategoryHealth    Category = "health"
	CategoryOther     Category = "other"
)

// Categories lists the recognized expense categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryLeisure,
	CategoryShopping,
	CategoryHealth,
	CategoryOther,
}

// FinanceLedger is the complete per-user financial record.
// All projections are derived from this single document.
type FinanceLedger struct {
	Income        Income         `json:"income"`
	Subscriptions []Subscription `json:"subscriptions"`
	Expenses      []Expense      `json:"expenses"`
	Savings       Savings        `json:"savings"`
	Investments   Investments    `json:"investments"`
	Debt          []Debt         `json:"debt"`
	Loaners       []Loan         `json:"loaners"`
}

// Income holds the recurring salary and irregular income entries.
type Income struct {
	// Salary is the recurring monthly salary.
	Salary float64 `json:"salary"`

	// OtherIncome are one-off or irregular income entries.
	// Totals include every entry regardless of its date.
	OtherIncome []IncomeEntry `json:"otherIncome"`
}

// IncomeEntry is a single irregular income.
type IncomeEntry struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
}

// Subscription is a recurring fixed cost.
type Subscription struct {
	ID        string    `json:"id"`
	Service   string    `json:"service"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Date      Date      `json:"date"`
}

// Expense is a discrete variable cost.
type Expense struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`

	// Date is the day the money was spent. Expenses without a date are
	// excluded from monthly totals.
	Date Date `json:"date"`
}

// Savings holds the current savings balance and the goals it is measured against.
type Savings struct {
	Current float64       `json:"current"`
	Goals   []SavingsGoal `json:"goals"`
}

// SavingsGoal is a target amount to reach by a given date.
type SavingsGoal struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	TargetAmount  float64 `json:"targetAmount"`
	TargetDate    Date    `json:"targetDate"`
	CurrentAmount float64 `json:"currentAmount"`
}

// Investments holds the invested balance and the derived monthly capacity.
type Investments struct {
	// Monthly is derived: it is overwritten with the investment capacity
	// every time the ledger is recomputed.
	Monthly float64 `json:"monthly"`

	// Current is the amount currently invested, entered by the user.
	Current float64 `json:"current"`
}

// Debt is money owed by the user.
type Debt struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	InitialAmount float64 `json:"initialAmount"`

	// RemainingAmount is never negative; payments clamp it at 0.
	RemainingAmount float64 `json:"remainingAmount"`

	// InterestRate is the annual rate in percent.
	InterestRate   float64 `json:"interestRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// Loan is money the user lent to someone else.
// Loans are removed from the ledger once marked repaid.
type Loan struct {
	ID          string  `json:"id"`
	Person      string  `json:"person"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
}

// NewLedger returns an empty ledger with every collection initialized.
func NewLedger() *FinanceLedger {
	return &FinanceLedger{
		Income:        Income{OtherIncome: []IncomeEntry{}},
		Subscriptions: []Subscription{},
		Expenses:      []Expense{},
		Savings:       Savings{Goals: []SavingsGoal{}},
		Debt:          []Debt{},
		Loaners:       []Loan{},
	}
}

// Normalize replaces nil collections with empty ones so the document
// always serializes with arrays, never null.
func (l *FinanceLedger) Normalize() {
	if l.Income.OtherIncome == nil {
		l.Income.OtherIncome = []IncomeEntry{}
	}
	if l.Subscriptions == nil {
		l.Subscriptions = []Subscription{}
	}
	if l.Expenses == nil {
		l.Expenses = []Expense{}
	}
	if l.Savings.Goals == nil {
		l.Savings.Goals = []SavingsGoal{}
	}
	if l.Debt == nil {
		l.Debt = []Debt{}
	}
	if l.Loaners == nil {
		l.Loaners = []Loan{}
	}
}
