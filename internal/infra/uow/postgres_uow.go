package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"hotel-reservation/internal/infra/readstore"
	"hotel-reservation/internal/infra/repository"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type Option func(*PostgresUoW)

// WithRetry bounds how often a write transaction is replayed after a
// serialization failure, deadlock or lock timeout.
func WithRetry(maxRetries int, base time.Duration) Option {
	return func(u *PostgresUoW) {
		u.maxRetries = maxRetries
		u.backoffBase = base
	}
}

// WithLockTimeout caps how long a write transaction waits for a row lock.
// Zero leaves the server default.
func WithLockTimeout(d time.Duration) Option {
	return func(u *PostgresUoW) { u.lockTimeout = d }
}

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries

	maxRetries  int
	backoffBase time.Duration
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts ...Option) shared.UnitOfWork {
	u := &PostgresUoW{
		pool:        pool,
		q:           q,
		maxRetries:  3,
		backoffBase: 100 * time.Millisecond,
		lockTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Within runs fn at READ COMMITTED; room rows are locked explicitly by the commands.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt, u.backoffBase)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithinReadOnly gives fn one consistent snapshot across tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// attempt is one begin/fn/commit round; the rollback runs before the caller sleeps.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if u.lockTimeout > 0 {
		if _, err := pgxTx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", u.lockTimeout.Milliseconds())); err != nil {
			return errs.Wrap(err, "failed to set lock timeout")
		}
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	reservationRepo shared.ReservationRepository
	historyRepo     shared.HistoryRepository
	roomRepo        shared.RoomRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository(t.uow.q)
	}
	return t.historyRepo
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.q)
	}
	return t.roomRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	userStore *readstore.UserReadStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}

	u, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Roles:    u.Roles,
	}
	return snapshot, nil
}
