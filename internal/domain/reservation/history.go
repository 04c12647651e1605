package reservation

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is the append-only copy of an archived reservation.
type HistoryRecord struct {
	id            uuid.UUID
	reservationID uuid.UUID
	userID        uuid.UUID
	roomID        uuid.UUID
	dates         DateRange
	addedDate     time.Time
	status        Status
	archivedAt    time.Time
}

func (h *HistoryRecord) ID() uuid.UUID            { return h.id }
func (h *HistoryRecord) ReservationID() uuid.UUID { return h.reservationID }
func (h *HistoryRecord) UserID() uuid.UUID        { return h.userID }
func (h *HistoryRecord) RoomID() uuid.UUID        { return h.roomID }
func (h *HistoryRecord) Dates() DateRange         { return h.dates }
func (h *HistoryRecord) AddedDate() time.Time     { return h.addedDate }
func (h *HistoryRecord) Status() Status           { return h.status }
func (h *HistoryRecord) ArchivedAt() time.Time    { return h.archivedAt }
