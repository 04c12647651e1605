package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	dates     DateRange
	addedDate time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(userID, roomID uuid.UUID, dates DateRange, status Status, addedDate time.Time) (*Reservation, error) {
	if dates.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if status == "" {
		return nil, ErrEmptyStatus
	}
	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		roomID:    roomID,
		dates:     dates,
		addedDate: DateOf(addedDate),
		status:    status,
	}, nil
}

// ReconstructReservation rebuilds a stored reservation without validation.
func ReconstructReservation(
	id, userID, roomID uuid.UUID,
	dates DateRange,
	addedDate time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		dates:     dates,
		addedDate: addedDate,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) Dates() DateRange     { return r.dates }
func (r *Reservation) AddedDate() time.Time { return r.addedDate }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// Reschedule replaces the date range; addedDate is kept.
func (r *Reservation) Reschedule(dates DateRange) error {
	if dates.IsZero() {
		return ErrInvalidDateRange
	}
	r.dates = dates
	return nil
}

func (r *Reservation) ChangeStatus(status Status) error {
	if status == "" {
		return ErrEmptyStatus
	}
	r.status = status
	return nil
}

// IsExpired reports whether the stay ended strictly before today.
func (r *Reservation) IsExpired(today time.Time) bool {
	return r.dates.EndsBefore(today)
}

// Archive produces the history copy of r. The caller removes r afterwards.
func (r *Reservation) Archive(archivedAt time.Time) *HistoryRecord {
	return &HistoryRecord{
		id:            uuid.New(),
		reservationID: r.id,
		userID:        r.userID,
		roomID:        r.roomID,
		dates:         r.dates,
		addedDate:     r.addedDate,
		status:        StatusArchived,
		archivedAt:    archivedAt,
	}
}
