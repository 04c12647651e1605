package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/reservation"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor identifies who is issuing a command.
type Actor struct {
	UserID uuid.UUID
	Admin  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	UpdateDates(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationDatesRequest) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	reservationQueries queries.ReservationQueries
	events             eventNotifier
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	publisher shared.EventPublisher,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		factory:            factory,
		reservationQueries: reservationQueries,
		events:             eventNotifier{publisher: publisher, clock: clk},
	}
}

// Create books a room. The room row lock serializes concurrent bookings of
// the same room so check-then-write cannot interleave.
func (c *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	dates, status, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, userID); err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}
		if err := tx.Rooms().LockByID(ctx, tx.DB(), req.RoomID); err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}

		overlapping, err := tx.Reservations().ExistsOverlapping(ctx, tx.DB(), req.RoomID, dates)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlapping {
			return errs.Wrapf(errs.ErrReservationConflict, "room %s %s", req.RoomID, dates)
		}

		res, err := c.factory.CreateReservation(userID, req.RoomID, dates, status)
		if err != nil {
			return invalid(err)
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return reservationWriteErr(err)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", created.ID().String(),
		"room_id", created.RoomID().String(),
		"dates", created.Dates().String())
	c.events.notify(ctx, shared.EventReservationCreated, created)

	return c.reservationQueries.GetByID(ctx, created.ID())
}

// UpdateDates reschedules a reservation. Omitted bounds keep their value and
// the reservation itself is excluded from the conflict scan.
func (c *reservationCommandsImpl) UpdateDates(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationDatesRequest) (*queries.ReservationView, error) {
	var updated *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}

		dates, err := req.ToDomain(res.Dates())
		if err != nil {
			return invalid(err)
		}

		if err := tx.Rooms().LockByID(ctx, tx.DB(), res.RoomID()); err != nil {
			return lookupErr(err, errs.ErrRoomNotFound)
		}
		others, err := tx.Reservations().FindByRoom(ctx, tx.DB(), res.RoomID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflict := reservation.FindConflict(dates, others, res.ID()); conflict != nil {
			return errs.Wrapf(errs.ErrReservationConflict, "overlaps reservation %s %s", conflict.ID(), conflict.Dates())
		}

		if err := res.Reschedule(dates); err != nil {
			return invalid(err)
		}
		if err := tx.Reservations().UpdateDates(ctx, tx.DB(), res); err != nil {
			return reservationWriteErr(err)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.events.notify(ctx, shared.EventReservationUpdated, updated)
	return c.reservationQueries.GetByID(ctx, id)
}

// UpdateStatus overwrites the status label. Scheduling is not affected.
func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error) {
	status, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	var updated *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		if err := res.ChangeStatus(status); err != nil {
			return invalid(err)
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return reservationWriteErr(err)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.events.notify(ctx, shared.EventReservationUpdated, updated)
	return c.reservationQueries.GetByID(ctx, id)
}

// Delete removes a reservation. Non-admin actors may only delete their own.
func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	var deleted *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		if !actor.Admin && res.UserID() != actor.UserID {
			return errs.ErrReservationNotOwned
		}
		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return reservationWriteErr(err)
		}
		deleted = res
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("reservation deleted", "reservation_id", id.String(), "by", actor.UserID.String())
	c.events.notify(ctx, shared.EventReservationDeleted, deleted)
	return nil
}
