//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	reqdto "hotel-reservation/internal/handler/dto/request"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	UserID    uuid.UUID
	StartDate string
	EndDate   string
	AddedDate string
	Status    string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		UserID:    uuid.New(),
		StartDate: "2025-03-10",
		EndDate:   "2025-03-15",
		AddedDate: "2025-03-01",
		Status:    "Pending",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) dates() reservation.DateRange {
	dates, err := reservation.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic("builder: " + err.Error())
	}
	return dates
}

func mustDate(s string) time.Time {
	d, err := reservation.ParseDate(s)
	if err != nil {
		panic("builder: " + err.Error())
	}
	return d
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	now := time.Now()
	return reservation.ReconstructReservation(
		b.ID, b.UserID, b.RoomID,
		b.dates(),
		mustDate(b.AddedDate),
		reservation.Status(b.Status),
		now, now,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	now := time.Now()
	return sqlc.Reservations{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		StartDate: pgconv.DateToPgtype(mustDate(b.StartDate)),
		EndDate:   pgconv.DateToPgtype(mustDate(b.EndDate)),
		AddedDate: pgconv.DateToPgtype(mustDate(b.AddedDate)),
		Status:    b.Status,
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:            b.ID,
		StartDate:     mustDate(b.StartDate),
		EndDate:       mustDate(b.EndDate),
		AddedDate:     mustDate(b.AddedDate),
		Status:        b.Status,
		UserID:        b.UserID,
		Username:      "guest01",
		RoomID:        b.RoomID,
		RoomNumber:    101,
		RoomType:      "Double",
		PricePerNight: 120,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    b.RoomID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    b.Status,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	b.RoomID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}
