package shared

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type EventType string

const (
	EventReservationCreated  EventType = "reservation.created"
	EventReservationUpdated  EventType = "reservation.updated"
	EventReservationDeleted  EventType = "reservation.deleted"
	EventReservationArchived EventType = "reservation.archived"
)

// ReservationEvent is published after the owning transaction commits.
type ReservationEvent struct {
	Type          EventType `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomID        uuid.UUID `json:"room_id"`
	UserID        uuid.UUID `json:"user_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewReservationEvent(t EventType, res *reservation.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          t,
		ReservationID: res.ID(),
		RoomID:        res.RoomID(),
		UserID:        res.UserID(),
		StartDate:     res.Dates().Start().Format(reservation.DateLayout),
		EndDate:       res.Dates().End().Format(reservation.DateLayout),
		Status:        res.Status().String(),
		OccurredAt:    at.UTC(),
	}
}

// NewArchivedEvent describes a reservation as it was moved into history.
func NewArchivedEvent(rec *reservation.HistoryRecord) ReservationEvent {
	return ReservationEvent{
		Type:          EventReservationArchived,
		ReservationID: rec.ReservationID(),
		RoomID:        rec.RoomID(),
		UserID:        rec.UserID(),
		StartDate:     rec.Dates().Start().Format(reservation.DateLayout),
		EndDate:       rec.Dates().End().Format(reservation.DateLayout),
		Status:        rec.Status().String(),
		OccurredAt:    rec.ArchivedAt().UTC(),
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, evt ReservationEvent) error
}

// RunLock guards a job so only one instance runs at a time.
// release is nil when acquired is false.
type RunLock interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool, err error)
}
