package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/room"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest) (*room.Room, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) (*room.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest) (*room.Room, error) {
	rm, err := room.NewRoom(req.ToDomain())
	if err != nil {
		return nil, invalid(err)
	}

	var created *room.Room
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Rooms().Create(ctx, tx.DB(), rm)
		if err != nil {
			return roomWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room created", "room_id", created.ID().String(), "number", created.Number())
	return created, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) (*room.Room, error) {
	var updated *room.Room
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().LockByID(ctx, tx.DB(), id); err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		rm, err := tx.Rooms().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		if err := rm.Apply(req.ToDomain(rm.Attributes())); err != nil {
			return invalid(err)
		}
		updated, err = tx.Rooms().Update(ctx, tx.DB(), rm)
		if err != nil {
			return roomWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete refuses rooms that still carry active reservations. History rows
// keep their snapshot and lose the room reference.
func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().LockByID(ctx, tx.DB(), id); err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		n, err := tx.Rooms().CountReservations(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if n > 0 {
			return errs.Wrapf(errs.ErrRoomHasReservations, "room %s has %d reservations", id, n)
		}
		if err := tx.Rooms().Delete(ctx, tx.DB(), id); err != nil {
			return roomWriteErr(err)
		}
		return nil
	})
}

func roomWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrRoomNumberTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrRoomHasReservations)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
