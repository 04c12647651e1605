package repository

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HistoryWriteQueries interface {
	CreateReservationHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationHistoryParams) (uuid.UUID, error)
}

type HistoryRepository struct {
	queries HistoryWriteQueries
}

func NewHistoryRepository(queries HistoryWriteQueries) *HistoryRepository {
	return &HistoryRepository{queries: queries}
}

// Append copies the record together with the room and user snapshot columns.
// A missing room or user yields KindNotFound since the snapshot select is empty.
func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, rec *reservation.HistoryRecord) error {
	_, err := r.queries.CreateReservationHistory(ctx, tx, converter.HistoryToInfra(rec))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room or user of archived reservation not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to append reservation history", err)
	}
	return nil
}
