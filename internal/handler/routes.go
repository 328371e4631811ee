package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmynk/financehelper/internal/auth"
	"github.com/mmynk/financehelper/internal/metrics"
	"github.com/mmynk/financehelper/internal/middleware"
)

// NewRouter builds the API router. Public routes are mounted on the root;
// everything under /api that touches a ledger requires a bearer token.
func NewRouter(h *Handler, jwtManager *auth.JWTManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	r.HandleFunc("/healthz", Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Public routes
	public := r.PathPrefix("/api").Subrouter()
	public.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	public.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	public.HandleFunc("/password-strength", h.PasswordStrength).Methods(http.MethodPost)
	public.HandleFunc("/simulate", h.Simulate).Methods(http.MethodPost)

	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(jwtManager))

	api.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	api.HandleFunc("/ledger", listHandler(h.ledger.Ledger)).Methods(http.MethodGet)
	api.HandleFunc("/summary", datedHandler(h.ledger.Summary)).Methods(http.MethodGet)
	api.HandleFunc("/payoff", listHandler(h.ledger.Payoff)).Methods(http.MethodGet)
	api.HandleFunc("/categories", datedHandler(h.ledger.Categories)).Methods(http.MethodGet)

	api.HandleFunc("/income/salary", setHandler(h.ledger.SetSalary)).Methods(http.MethodPut)
	api.HandleFunc("/income", createHandler(h.ledger.AddIncome)).Methods(http.MethodPost)
	api.HandleFunc("/income/{id}", updateHandler(h.ledger.UpdateIncome)).Methods(http.MethodPut)
	api.HandleFunc("/income/{id}", deleteHandler(h.ledger.DeleteIncome)).Methods(http.MethodDelete)

	api.HandleFunc("/subscriptions", h.Subscriptions).Methods(http.MethodGet)
	api.HandleFunc("/subscriptions", createHandler(h.ledger.AddSubscription)).Methods(http.MethodPost)
	api.HandleFunc("/subscriptions/{id}", updateHandler(h.ledger.UpdateSubscription)).Methods(http.MethodPut)
	api.HandleFunc("/subscriptions/{id}", deleteHandler(h.ledger.DeleteSubscription)).Methods(http.MethodDelete)

	api.HandleFunc("/expenses", listHandler(h.ledger.Expenses)).Methods(http.MethodGet)
	api.HandleFunc("/expenses", createHandler(h.ledger.AddExpense)).Methods(http.MethodPost)
	api.HandleFunc("/expenses/{id}", updateHandler(h.ledger.UpdateExpense)).Methods(http.MethodPut)
	api.HandleFunc("/expenses/{id}", deleteHandler(h.ledger.DeleteExpense)).Methods(http.MethodDelete)

	api.HandleFunc("/savings", setHandler(h.ledger.SetSavings)).Methods(http.MethodPut)
	api.HandleFunc("/goals", datedHandler(h.ledger.Goals)).Methods(http.MethodGet)
	api.HandleFunc("/goals", createHandler(h.ledger.AddGoal)).Methods(http.MethodPost)
	api.HandleFunc("/goals/{id}", updateHandler(h.ledger.UpdateGoal)).Methods(http.MethodPut)
	api.HandleFunc("/goals/{id}", deleteHandler(h.ledger.DeleteGoal)).Methods(http.MethodDelete)

	api.HandleFunc("/investments", setHandler(h.ledger.SetInvestments)).Methods(http.MethodPut)

	api.HandleFunc("/debts", listHandler(h.ledger.Debts)).Methods(http.MethodGet)
	api.HandleFunc("/debts", createHandler(h.ledger.AddDebt)).Methods(http.MethodPost)
	api.HandleFunc("/debts/{id}", updateHandler(h.ledger.UpdateDebt)).Methods(http.MethodPut)
	api.HandleFunc("/debts/{id}", deleteHandler(h.ledger.DeleteDebt)).Methods(http.MethodDelete)
	api.HandleFunc("/debts/{id}/payments", h.PayDebt).Methods(http.MethodPost)

	api.HandleFunc("/loans", listHandler(h.ledger.Loans)).Methods(http.MethodGet)
	api.HandleFunc("/loans", createHandler(h.ledger.AddLoan)).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id}", updateHandler(h.ledger.UpdateLoan)).Methods(http.MethodPut)
	api.HandleFunc("/loans/{id}", deleteHandler(h.ledger.DeleteLoan)).Methods(http.MethodDelete)
	api.HandleFunc("/loans/{id}/repaid", h.MarkLoanRepaid).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id}/reminder", h.LoanReminder).Methods(http.MethodPost)

	return r
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
