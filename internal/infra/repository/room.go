package repository

import (
	"context"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (sqlc.Rooms, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	LockRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	CountReservationsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	row, err := r.queries.CreateRoom(ctx, tx, converter.RoomToCreateParams(rm))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create room", err)
	}
	return converter.RoomFromInfra(row), nil
}

func (r *RoomRepository) Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	row, err := r.queries.UpdateRoom(ctx, tx, converter.RoomToUpdateParams(rm))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update room", err)
	}
	return converter.RoomFromInfra(row), nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return converter.RoomFromInfra(row), nil
}

// LockByID takes a row lock on the room, serializing bookings of that room.
func (r *RoomRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.LockRoomByID(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *RoomRepository) CountReservations(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	n, err := r.queries.CountReservationsByRoom(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count room reservations", err)
	}
	return n, nil
}
