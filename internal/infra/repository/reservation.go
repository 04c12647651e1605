package repository

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.Reservations, error)
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
	ListExpiredReservationIDs(ctx context.Context, db sqlc.DBTX, endDate pgtype.Date) ([]uuid.UUID, error)
	UpdateReservationDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationDatesParams) (int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// FindByIDForUpdate row-locks the reservation until the transaction ends.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) FindByRoom(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByRoom(ctx, tx, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by room", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

// ExistsOverlapping reports whether any stored reservation of the room
// overlaps dates under the half-open rule.
func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, dates reservation.DateRange) (bool, error) {
	exists, err := r.queries.ExistsOverlappingReservation(ctx, tx, sqlc.ExistsOverlappingReservationParams{
		RoomID:    roomID,
		EndDate:   pgconv.DateToPgtype(dates.End()),
		StartDate: pgconv.DateToPgtype(dates.Start()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}

// ListExpiredIDs returns reservations whose end date is strictly before today.
func (r *ReservationRepository) ListExpiredIDs(ctx context.Context, tx sqlc.DBTX, today time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredReservationIDs(ctx, tx, pgconv.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired reservations", err)
	}
	return ids, nil
}

func (r *ReservationRepository) UpdateDates(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationDates(ctx, tx, sqlc.UpdateReservationDatesParams{
		ID:        res.ID(),
		StartDate: pgconv.DateToPgtype(res.Dates().Start()),
		EndDate:   pgconv.DateToPgtype(res.Dates().End()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation dates", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:     res.ID(),
		Status: res.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
