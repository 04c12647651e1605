package readstore

import (
	"context"
	"time"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationViewsRow, error)
	ListReservationViewsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListReservationViewsByUserRow, error)
	ListReservedRangesByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.ListReservedRangesByRoomRow, error)
	ListUpcomingReservationsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingReservationsByRoomParams) ([]sqlc.Reservations, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation views", err)
	}
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReservationView(sqlc.GetReservationViewRow(row)))
	}
	return out, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation views by user", err)
	}
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReservationView(sqlc.GetReservationViewRow(row)))
	}
	return out, nil
}

func (r *ReservationReadStore) FindReservedRanges(ctx context.Context, roomID uuid.UUID) ([]queries.ReservedRange, error) {
	rows, err := r.queries.ListReservedRangesByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reserved ranges", err)
	}
	out := make([]queries.ReservedRange, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.ReservedRange{
			StartDate: pgconv.DateFromPgtype(row.StartDate),
			EndDate:   pgconv.DateFromPgtype(row.EndDate),
		})
	}
	return out, nil
}

// FindUpcomingByRoom lists reservations starting on or after from, ordered by start date.
func (r *ReservationReadStore) FindUpcomingByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListUpcomingReservationsByRoom(ctx, r.db, sqlc.ListUpcomingReservationsByRoomParams{
		RoomID:    roomID,
		StartDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}
	if len(rows) == 0 {
		return []*queries.ReservationView{}, nil
	}

	rm, err := r.queries.GetRoomByID(ctx, r.db, roomID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}

	usernames := make(map[uuid.UUID]string)
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		name, ok := usernames[row.UserID]
		if !ok {
			u, err := r.queries.GetUserByID(ctx, r.db, row.UserID)
			if err != nil && !pgconv.IsNoRows(err) {
				return nil, infra.WrapRepoErr("failed to get reservation owner", err)
			}
			name = u.Username
			usernames[row.UserID] = name
		}
		out = append(out, &queries.ReservationView{
			ID:            row.ID,
			StartDate:     pgconv.DateFromPgtype(row.StartDate),
			EndDate:       pgconv.DateFromPgtype(row.EndDate),
			AddedDate:     pgconv.DateFromPgtype(row.AddedDate),
			Status:        row.Status,
			UserID:        row.UserID,
			Username:      name,
			RoomID:        rm.ID,
			RoomNumber:    int(rm.RoomNumber),
			RoomType:      rm.RoomType,
			PhotoURL:      rm.PhotoUrl,
			PricePerNight: int(rm.PricePerNight),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

func toReservationView(row sqlc.GetReservationViewRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:            row.ID,
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		AddedDate:     pgconv.DateFromPgtype(row.AddedDate),
		Status:        row.Status,
		UserID:        row.UserID,
		Username:      row.Username,
		RoomID:        row.RoomID,
		RoomNumber:    int(row.RoomNumber),
		RoomType:      row.RoomType,
		PhotoURL:      row.PhotoUrl,
		PricePerNight: int(row.PricePerNight),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
