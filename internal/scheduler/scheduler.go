// Package scheduler periodically recomputes the derived figures of every
// stored ledger, so month-dependent values stay current without user edits.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/financehelper/internal/metrics"
)

// OwnerLister lists the users that have a ledger.
type OwnerLister interface {
	ListLedgerOwners(ctx context.Context) ([]string, error)
}

// Refresher recomputes one user's derived figures.
type Refresher interface {
	RefreshDerived(ctx context.Context, userID string) error
}

// Scheduler runs the refresh job on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	owners    OwnerLister
	refresher Refresher
	timeout   time.Duration
}

// New creates a scheduler for the standard five-field cron expression spec.
func New(spec string, owners OwnerLister, refresher Refresher) (*Scheduler, error) {
	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug))
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		owners:    owners,
		refresher: refresher,
		timeout:   5 * time.Minute,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started", "next_run", s.Next())
}

// Stop halts the scheduler and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Next returns the time of the next scheduled run.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now())
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.RunOnce(ctx)
	metrics.RefreshRuns.WithLabelValues(metrics.Status(err)).Inc()
	if err != nil {
		slog.Error("Ledger refresh failed", "refreshed", n, "error", err)
		return
	}
	slog.Info("Ledger refresh completed", "refreshed", n, "duration_ms", time.Since(start).Milliseconds())
}

// RunOnce refreshes every ledger and returns how many succeeded. A failure
// on one ledger does not stop the others; all failures are returned joined.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	owners, err := s.owners.ListLedgerOwners(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list ledgers: %w", err)
	}

	var refreshed int
	var errs []error
	for _, userID := range owners {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.refresher.RefreshDerived(ctx, userID); err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}
