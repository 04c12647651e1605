package converter

import (
	"hotel-reservation/internal/domain/reservation"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		UserID:    res.UserID(),
		StartDate: pgconv.DateToPgtype(res.Dates().Start()),
		EndDate:   pgconv.DateToPgtype(res.Dates().End()),
		AddedDate: pgconv.DateToPgtype(res.AddedDate()),
		Status:    res.Status().String(),
	}
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	dates, err := reservation.NewDateRange(
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s has invalid dates", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.RoomID,
		dates,
		pgconv.DateFromPgtype(row.AddedDate),
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func HistoryToInfra(rec *reservation.HistoryRecord) sqlc.CreateReservationHistoryParams {
	return sqlc.CreateReservationHistoryParams{
		ID:            rec.ID(),
		ReservationID: rec.ReservationID(),
		StartDate:     pgconv.DateToPgtype(rec.Dates().Start()),
		EndDate:       pgconv.DateToPgtype(rec.Dates().End()),
		AddedDate:     pgconv.DateToPgtype(rec.AddedDate()),
		Status:        rec.Status().String(),
		ArchivedAt:    pgconv.TimeToPgtype(rec.ArchivedAt()),
		RoomID:        rec.RoomID(),
		UserID:        rec.UserID(),
	}
}
