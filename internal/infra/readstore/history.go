package readstore

import (
	"context"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"
)

type HistoryReadQueries interface {
	ListReservationHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationHistoryParams) ([]sqlc.ReservationHistory, error)
	CountReservationHistory(ctx context.Context, db sqlc.DBTX) (int64, error)
	ListHistoryStatistics(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListHistoryStatisticsRow, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{queries: queries, db: db}
}

func (r *HistoryReadStore) FindPage(ctx context.Context, limit, offset int32) ([]*queries.HistoryView, error) {
	rows, err := r.queries.ListReservationHistory(ctx, r.db, sqlc.ListReservationHistoryParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation history", err)
	}

	out := make([]*queries.HistoryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.HistoryView{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			RoomID:        pgconv.UUIDPtrFromPgtype(row.RoomID),
			UserID:        pgconv.UUIDPtrFromPgtype(row.UserID),
			RoomNumber:    int(row.RoomNumber),
			RoomType:      row.RoomType,
			Username:      row.Username,
			StartDate:     pgconv.DateFromPgtype(row.StartDate),
			EndDate:       pgconv.DateFromPgtype(row.EndDate),
			AddedDate:     pgconv.DateFromPgtype(row.AddedDate),
			Status:        row.Status,
			ArchivedAt:    pgconv.TimeFromPgtype(row.ArchivedAt),
		})
	}
	return out, nil
}

func (r *HistoryReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountReservationHistory(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservation history", err)
	}
	return n, nil
}

func (r *HistoryReadStore) FindStatistics(ctx context.Context) ([]queries.HistoryStatistic, error) {
	rows, err := r.queries.ListHistoryStatistics(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history statistics", err)
	}
	out := make([]queries.HistoryStatistic, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.HistoryStatistic{
			StartDate:  pgconv.DateFromPgtype(row.StartDate),
			EndDate:    pgconv.DateFromPgtype(row.EndDate),
			RoomNumber: int(row.RoomNumber),
			RoomType:   row.RoomType,
		})
	}
	return out, nil
}
