package handler

import (
	"net/http"

	"github.com/mmynk/financehelper/internal/auth"
	"github.com/mmynk/financehelper/internal/service"
)

// Register creates an account and returns a session.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.RegisterInput](w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	session, err := h.auth.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	in, err := decode[loginRequest](w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	session, err := h.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Logout is a no-op: tokens are stateless and discarded by the client.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type passwordRequest struct {
	Password string `json:"password"`
}

// PasswordStrength scores a candidate password.
func (h *Handler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	in, err := decode[passwordRequest](w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, auth.EvaluatePasswordStrength(in.Password))
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
