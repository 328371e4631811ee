package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/validators"
)

// Subscriptions lists the recurring costs.
func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.ledger.Ledger(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ledger.Subscriptions)
}

type paymentRequest struct {
	Amount         float64 `json:"amount"`
	RemoveWhenPaid bool    `json:"removeWhenPaid"`
}

// PayDebt applies a payment to a debt.
func (h *Handler) PayDebt(w http.ResponseWriter, r *http.Request) {
	in, err := decode[paymentRequest](w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := h.ledger.PayDebt(r.Context(), userID(r), mux.Vars(r)["id"], in.Amount, in.RemoveWhenPaid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// MarkLoanRepaid removes a loan and returns it.
func (h *Handler) MarkLoanRepaid(w http.ResponseWriter, r *http.Request) {
	loan, err := h.ledger.MarkLoanRepaid(r.Context(), userID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

type reminderRequest struct {
	Email string `json:"email"`
}

// LoanReminder composes a reminder and emails it when an address is given.
// An empty body is accepted.
func (h *Handler) LoanReminder(w http.ResponseWriter, r *http.Request) {
	var in reminderRequest
	if r.ContentLength != 0 {
		var err error
		if in, err = decode[reminderRequest](w, r); err != nil {
			writeError(w, err)
			return
		}
	}
	out, err := h.ledger.LoanReminder(r.Context(), userID(r), mux.Vars(r)["id"], in.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type simulateRequest struct {
	InitialAmount       float64 `json:"initialAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Years               int     `json:"years"`
	AnnualRate          float64 `json:"annualRate"`
}

// Simulate projects investment growth. It needs no ledger.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	in, err := decode[simulateRequest](w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := validators.Growth(in.InitialAmount, in.MonthlyContribution, in.Years, in.AnnualRate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calculator.SimulateGrowth(in.InitialAmount, in.MonthlyContribution, in.Years, in.AnnualRate))
}
