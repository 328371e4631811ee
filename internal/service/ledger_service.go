// Package service implements the ledger and account operations behind the HTTP API.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/clock"
	"github.com/mmynk/financehelper/internal/metrics"
	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/internal/notify"
	"github.com/mmynk/financehelper/internal/storage"
)

const tracerName = "github.com/mmynk/financehelper/internal/service"

// LedgerService loads a user's ledger, applies a change, recomputes the
// derived figures and saves the result. Writes are serialized.
type LedgerService struct {
	store  storage.LedgerStore
	clock  clock.Clock
	mailer notify.Sender
	tracer trace.Tracer

	mu sync.Mutex
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithClock sets the time source used for "now".
func WithClock(c clock.Clock) Option {
	return func(s *LedgerService) { s.clock = c }
}

// WithMailer enables sending loan reminders by email.
func WithMailer(m notify.Sender) Option {
	return func(s *LedgerService) { s.mailer = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *LedgerService) { s.tracer = t }
}

// NewLedgerService creates a LedgerService over the given store.
func NewLedgerService(store storage.LedgerStore, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:  store,
		clock:  clock.Real{},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service's current time.
func (s *LedgerService) Now() time.Time {
	return s.clock.Now()
}

// resolve returns asOf, or now when asOf is zero.
func (s *LedgerService) resolve(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return s.clock.Now()
	}
	return asOf
}

func (s *LedgerService) startSpan(ctx context.Context, op, userID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "ledger."+op, trace.WithAttributes(attribute.String("user.id", userID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// mutate runs fn against the user's ledger and persists the result when fn
// succeeds. Derived fields are recomputed before saving.
func (s *LedgerService) mutate(ctx context.Context, userID, op string, fn func(*models.FinanceLedger) error) (err error) {
	ctx, span := s.startSpan(ctx, op, userID)
	defer func() {
		endSpan(span, err)
		metrics.LedgerMutations.WithLabelValues(op, metrics.Status(err)).Inc()
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.store.LoadLedger(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	if err := fn(ledger); err != nil {
		slog.Warn("Ledger mutation rejected", "operation", op, "user_id", userID, "error", err)
		return err
	}

	s.recompute(ledger)
	if err := s.store.SaveLedger(ctx, userID, ledger); err != nil {
		slog.Error("Failed to save ledger", "operation", op, "user_id", userID, "error", err)
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	slog.Info("Ledger updated", "operation", op, "user_id", userID)
	return nil
}

// view loads the ledger for a read-only operation.
func (s *LedgerService) view(ctx context.Context, userID, op string, fn func(*models.FinanceLedger) error) (err error) {
	ctx, span := s.startSpan(ctx, op, userID)
	defer func() { endSpan(span, err) }()

	ledger, err := s.store.LoadLedger(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	return fn(ledger)
}

func (s *LedgerService) recompute(ledger *models.FinanceLedger) {
	ledger.Investments.Monthly = calculator.InvestmentCapacity(ledger, s.clock.Now())
}

// Ledger returns the user's full ledger document.
func (s *LedgerService) Ledger(ctx context.Context, userID string) (*models.FinanceLedger, error) {
	var out *models.FinanceLedger
	err := s.view(ctx, userID, "get", func(l *models.FinanceLedger) error {
		out = l
		return nil
	})
	return out, err
}

// RefreshDerived recomputes the derived figures without changing any entry.
// The scheduler calls it when a new month starts.
func (s *LedgerService) RefreshDerived(ctx context.Context, userID string) error {
	return s.mutate(ctx, userID, "refresh", func(*models.FinanceLedger) error { return nil })
}
