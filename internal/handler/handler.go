// Package handler exposes the ledger and account services as a JSON HTTP API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mmynk/financehelper/internal/auth"
	"github.com/mmynk/financehelper/internal/middleware"
	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/internal/service"
	"github.com/mmynk/financehelper/internal/validators"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Handler serves the HTTP API.
type Handler struct {
	ledger *service.LedgerService
	auth   *service.AuthService
}

// NewHandler creates a handler over the given services.
func NewHandler(ledger *service.LedgerService, authService *service.AuthService) *Handler {
	return &Handler{ledger: ledger, auth: authService}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service errors onto HTTP status codes. Unexpected errors
// are logged and reported without detail.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, validators.ErrInvalid), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrEmailExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func decode[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("%w: malformed JSON body: %v", errBadRequest, err)
	}
	return v, nil
}

// asOf reads the optional asOf query parameter. The zero time means now.
func asOf(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("asOf")
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: asOf must be YYYY-MM-DD", errBadRequest)
	}
	return d.Time, nil
}

func userID(r *http.Request) string {
	return middleware.GetUserID(r.Context())
}

// The helpers below adapt service methods into handlers so every collection
// shares the same decoding and error handling.

func createHandler[T any](fn func(context.Context, string, T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decode[T](w, r)
		if err != nil {
			writeError(w, err)
			return
		}
		out, err := fn(r.Context(), userID(r), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func updateHandler[T any](fn func(context.Context, string, string, T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decode[T](w, r)
		if err != nil {
			writeError(w, err)
			return
		}
		out, err := fn(r.Context(), userID(r), mux.Vars(r)["id"], in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteHandler(fn func(context.Context, string, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listHandler[T any](fn func(context.Context, string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r.Context(), userID(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func datedHandler[T any](fn func(context.Context, string, time.Time) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		at, err := asOf(r)
		if err != nil {
			writeError(w, err)
			return
		}
		out, err := fn(r.Context(), userID(r), at)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type amountRequest struct {
	Value float64 `json:"value"`
}

// setHandler adapts a setter of a single amount, e.g. the salary.
func setHandler(fn func(context.Context, string, float64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decode[amountRequest](w, r)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := fn(r.Context(), userID(r), in.Value); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
