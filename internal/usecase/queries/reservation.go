package queries

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListReservedRanges(ctx context.Context, roomID uuid.UUID) ([]ReservedRange, error)
	ListUpcomingByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindReservedRanges(ctx context.Context, roomID uuid.UUID) ([]ReservedRange, error)
	FindUpcomingByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	rooms RoomReadStore
	users UserReadStore
}

func NewReservationQueries(store ReservationReadStore, rooms RoomReadStore, users UserReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, rooms: rooms, users: users}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	return q.store.FindAll(ctx)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return q.store.FindByUserID(ctx, userID)
}

// ListReservedRanges returns every range of the room regardless of status or age.
func (q *reservationQueriesImpl) ListReservedRanges(ctx context.Context, roomID uuid.UUID) ([]ReservedRange, error) {
	if err := q.ensureRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return q.store.FindReservedRanges(ctx, roomID)
}

func (q *reservationQueriesImpl) ListUpcomingByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*ReservationView, error) {
	if err := q.ensureRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return q.store.FindUpcomingByRoom(ctx, roomID, reservation.DateOf(from))
}

func (q *reservationQueriesImpl) ensureRoom(ctx context.Context, roomID uuid.UUID) error {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomNotFound
		}
		return err
	}
	return nil
}
