package reservation

import (
	"time"

	"hotel-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock    clock.Clock
	Location *time.Location
}

func NewFactory(clk clock.Clock, loc *time.Location) *Factory {
	return &Factory{Clock: clk, Location: loc}
}

// CreateReservation stamps the booking with today's date as its added date.
func (f *Factory) CreateReservation(userID, roomID uuid.UUID, dates DateRange, status Status) (*Reservation, error) {
	return NewReservation(userID, roomID, dates, status, clock.Today(f.Clock, f.Location))
}

func (f *Factory) Today() time.Time {
	return clock.Today(f.Clock, f.Location)
}
