package calculator

import (
	"time"

	"github.com/mmynk/financehelper/internal/models"
)

// AlertLevel grades the monthly balance relative to income.
type AlertLevel string

const (
	AlertOK       AlertLevel = "ok"
	AlertWarning  AlertLevel = "warning"
	AlertDanger   AlertLevel = "danger"
	AlertNegative AlertLevel = "negative"
)

const (
	dangerShare  = 0.10
	warningShare = 0.20
)

// BalanceAlertLevel grades the monthly balance as of the given instant.
func BalanceAlertLevel(ledger *models.FinanceLedger, asOf time.Time) AlertLevel {
	return alertFor(TotalIncome(ledger), MonthlyBalance(ledger, asOf))
}

// alertFor checks thresholds from most to least severe; a balance exactly
// on a threshold falls into the more severe tier.
func alertFor(income, balance float64) AlertLevel {
	switch {
	case balance <= 0:
		return AlertNegative
	case balance <= income*dangerShare:
		return AlertDanger
	case balance <= income*warningShare:
		return AlertWarning
	default:
		return AlertOK
	}
}
