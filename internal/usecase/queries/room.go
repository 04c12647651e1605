package queries

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListAvailable(ctx context.Context, start, end time.Time) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindAvailable(ctx context.Context, window reservation.DateRange) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAll(ctx)
}

// ListAvailable drops every room with a reservation touching the closed
// window [start, end]. This is broader than the booking conflict test.
func (q *roomQueriesImpl) ListAvailable(ctx context.Context, start, end time.Time) ([]*RoomView, error) {
	window, err := reservation.NewWindow(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}
	return q.store.FindAvailable(ctx, window)
}
