package request

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required,isodate" example:"2025-03-01"`
	EndDate   string    `json:"end_date" binding:"required,isodate" example:"2025-03-05"`
	Status    string    `json:"status" binding:"omitempty,max=50" example:"Pending"`
}

// ToDomain parses the stay; an omitted status books as Pending.
func (r *CreateReservationRequest) ToDomain() (reservation.DateRange, reservation.Status, error) {
	dates, err := reservation.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return reservation.DateRange{}, "", err
	}
	if r.Status == "" {
		return dates, reservation.StatusPending, nil
	}
	status, err := reservation.NewStatus(r.Status)
	if err != nil {
		return reservation.DateRange{}, "", err
	}
	return dates, status, nil
}

type UpdateReservationDatesRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,isodate" example:"2025-03-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,isodate" example:"2025-03-06"`
}

// ToDomain fills an omitted bound from the current range.
func (r *UpdateReservationDatesRequest) ToDomain(current reservation.DateRange) (reservation.DateRange, error) {
	start := patch.Coalesce(r.StartDate, current.Start().Format(reservation.DateLayout))
	end := patch.Coalesce(r.EndDate, current.End().Format(reservation.DateLayout))
	return reservation.ParseDateRange(start, end)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,max=50" example:"Confirmed"`
}

func (r *UpdateReservationStatusRequest) ToDomain() (reservation.Status, error) {
	return reservation.NewStatus(r.Status)
}

type UpcomingReservationsQuery struct {
	From string `form:"from" binding:"omitempty,isodate"`
}

// ToDomain defaults an omitted from date to today.
func (q *UpcomingReservationsQuery) ToDomain(today time.Time) (time.Time, error) {
	if q.From == "" {
		return today, nil
	}
	return reservation.ParseDate(q.From)
}
