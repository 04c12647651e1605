//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/room"
	reqdto "hotel-reservation/internal/handler/dto/request"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID            uuid.UUID
	Number        int
	Type          string
	Capacity      int
	PricePerNight int
	PhotoURL      string
	Content       room.Content
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:            uuid.New(),
		Number:        101,
		Type:          "Double",
		Capacity:      2,
		PricePerNight: 120,
		PhotoURL:      "https://example.com/rooms/101.jpg",
		Content:       room.Content{Chairs: 2, Beds: 1, Desks: 1, TVs: 1, Kettles: 1},
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) attributes() room.Attributes {
	return room.Attributes{
		Number:        b.Number,
		Type:          b.Type,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		PhotoURL:      b.PhotoURL,
		Content:       b.Content,
	}
}

// Build methods
func (b *RoomBuilder) BuildDomain() *room.Room {
	now := time.Now()
	return room.ReconstructRoom(b.ID, b.attributes(), now, now)
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	now := time.Now()
	// #nosec G115 -- builder values are small test constants
	return sqlc.Rooms{
		ID:            b.ID,
		RoomNumber:    int32(b.Number),
		RoomType:      b.Type,
		Capacity:      int32(b.Capacity),
		PricePerNight: int32(b.PricePerNight),
		PhotoUrl:      b.PhotoURL,
		Chairs:        int32(b.Content.Chairs),
		Beds:          int32(b.Content.Beds),
		Desks:         int32(b.Content.Desks),
		Balconies:     int32(b.Content.Balconies),
		Tvs:           int32(b.Content.TVs),
		Fridges:       int32(b.Content.Fridges),
		Kettles:       int32(b.Content.Kettles),
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:            b.ID,
		Number:        b.Number,
		Type:          b.Type,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		PhotoURL:      b.PhotoURL,
		Content: queries.RoomContentView{
			Chairs:    b.Content.Chairs,
			Beds:      b.Content.Beds,
			Desks:     b.Content.Desks,
			Balconies: b.Content.Balconies,
			TVs:       b.Content.TVs,
			Fridges:   b.Content.Fridges,
			Kettles:   b.Content.Kettles,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:        b.Number,
		Type:          b.Type,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		PhotoURL:      b.PhotoURL,
		Content: reqdto.RoomContentRequest{
			Chairs:    b.Content.Chairs,
			Beds:      b.Content.Beds,
			Desks:     b.Content.Desks,
			Balconies: b.Content.Balconies,
			TVs:       b.Content.TVs,
			Fridges:   b.Content.Fridges,
			Kettles:   b.Content.Kettles,
		},
	}
}

// Fluent builder methods
func (b *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) WithNumber(n int) *RoomBuilder {
	b.Number = n
	return b
}

func (b *RoomBuilder) WithType(t string) *RoomBuilder {
	b.Type = t
	return b
}

func (b *RoomBuilder) WithPricePerNight(p int) *RoomBuilder {
	b.PricePerNight = p
	return b
}
