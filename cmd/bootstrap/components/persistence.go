package components

import (
	"time"

	"hotel-reservation/internal/infra/readstore"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// History
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HistoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q,
		uow.WithRetry(cfg.DB.TxRetries, 100*time.Millisecond),
		uow.WithLockTimeout(cfg.DB.LockTimeout),
	)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
