package shared

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/user"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	History() HistoryRepository
	Rooms() RoomRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByRoom(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) ([]*reservation.Reservation, error)
	ExistsOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, dates reservation.DateRange) (bool, error)
	ListExpiredIDs(ctx context.Context, tx sqlc.DBTX, today time.Time) ([]uuid.UUID, error)
	UpdateDates(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, rec *reservation.HistoryRecord) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) (*room.Room, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *room.Room) (*room.Room, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CountReservations(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, tx sqlc.DBTX, username user.Username) (*user.User, error)
}
