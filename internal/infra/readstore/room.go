package readstore

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsParams) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{queries: queries, db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return toRoomViews(rows), nil
}

func (r *RoomReadStore) FindAvailable(ctx context.Context, window reservation.DateRange) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListAvailableRooms(ctx, r.db, sqlc.ListAvailableRoomsParams{
		WindowStart: pgconv.DateToPgtype(window.Start()),
		WindowEnd:   pgconv.DateToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	return toRoomViews(rows), nil
}

func toRoomViews(rows []sqlc.Rooms) []*queries.RoomView {
	out := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRoomView(row))
	}
	return out
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:            row.ID,
		Number:        int(row.RoomNumber),
		Type:          row.RoomType,
		Capacity:      int(row.Capacity),
		PricePerNight: int(row.PricePerNight),
		PhotoURL:      row.PhotoUrl,
		Content: queries.RoomContentView{
			Chairs:    int(row.Chairs),
			Beds:      int(row.Beds),
			Desks:     int(row.Desks),
			Balconies: int(row.Balconies),
			TVs:       int(row.Tvs),
			Fridges:   int(row.Fridges),
			Kettles:   int(row.Kettles),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
