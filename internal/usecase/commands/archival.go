package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const ArchivalLockKey = "hotel-reservation:archival"

// ArchiveReport summarizes one archival run.
type ArchiveReport struct {
	Today     time.Time   `json:"today"`
	Scanned   int         `json:"scanned"`
	Archived  int         `json:"archived"`
	Unchanged int         `json:"unchanged"`
	Failed    int         `json:"failed"`
	FailedIDs []uuid.UUID `json:"failed_ids"`
	Skipped   bool        `json:"skipped"`
}

type ArchivalCommands interface {
	Run(ctx context.Context) (*ArchiveReport, error)
}

type archivalCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	lock    shared.RunLock
	lockTTL time.Duration
	clock   clock.Clock
	events  eventNotifier

	running sync.Mutex
}

func NewArchivalCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	lock shared.RunLock,
	lockTTL time.Duration,
	publisher shared.EventPublisher,
	clk clock.Clock,
) ArchivalCommands {
	return &archivalCommandsImpl{
		uow:     uow,
		factory: factory,
		lock:    lock,
		lockTTL: lockTTL,
		clock:   clk,
		events:  eventNotifier{publisher: publisher, clock: clk},
	}
}

// Run moves every reservation that ended before today into history.
// At most one run executes at a time; a run that cannot take the lock
// reports Skipped. Each reservation is archived in its own transaction and
// a failure is recorded without stopping the batch.
func (a *archivalCommandsImpl) Run(ctx context.Context) (*ArchiveReport, error) {
	if !a.running.TryLock() {
		slog.Info("archival already running in this process, skipping")
		return &ArchiveReport{Skipped: true, FailedIDs: []uuid.UUID{}}, nil
	}
	defer a.running.Unlock()

	release, acquired, err := a.lock.TryAcquire(ctx, ArchivalLockKey, a.lockTTL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to acquire archival lock")
	}
	if !acquired {
		slog.Info("archival lock held by another instance, skipping")
		return &ArchiveReport{Skipped: true, FailedIDs: []uuid.UUID{}}, nil
	}
	defer release()

	today := a.factory.Today()
	report := &ArchiveReport{Today: today, FailedIDs: []uuid.UUID{}}
	slog.Info("archival started", "today", today.Format(reservation.DateLayout))

	var ids []uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err = tx.Reservations().ListExpiredIDs(ctx, tx.DB(), today)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	report.Scanned = len(ids)

	for _, id := range ids {
		if ctx.Err() != nil {
			slog.Warn("archival interrupted", "remaining", report.Scanned-report.Archived-report.Unchanged-report.Failed, "error", ctx.Err().Error())
			break
		}

		archived, err := a.archiveOne(ctx, id, today)
		switch {
		case err != nil:
			report.Failed++
			report.FailedIDs = append(report.FailedIDs, id)
			slog.Error("failed to archive reservation",
				"reservation_id", id.String(),
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, 5))
		case archived == nil:
			report.Unchanged++
		default:
			report.Archived++
			a.events.notifyArchived(ctx, archived)
		}
	}

	slog.Info("archival finished",
		"scanned", report.Scanned,
		"archived", report.Archived,
		"unchanged", report.Unchanged,
		"failed", report.Failed)
	return report, nil
}

// archiveOne returns nil without error when the reservation vanished or was
// moved to a later end date since the scan.
func (a *archivalCommandsImpl) archiveOne(ctx context.Context, id uuid.UUID, today time.Time) (*reservation.HistoryRecord, error) {
	var archived *reservation.HistoryRecord
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		archived = nil
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if !res.IsExpired(today) {
			return nil
		}

		rec := res.Archive(a.clock.Now())
		if err := tx.History().Append(ctx, tx.DB(), rec); err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return err
		}
		archived = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return archived, nil
}
