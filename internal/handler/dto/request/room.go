package request

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/patch"
)

type RoomContentRequest struct {
	Chairs    int `json:"chairs" binding:"min=0"`
	Beds      int `json:"beds" binding:"min=0"`
	Desks     int `json:"desks" binding:"min=0"`
	Balconies int `json:"balconies" binding:"min=0"`
	TVs       int `json:"tvs" binding:"min=0"`
	Fridges   int `json:"fridges" binding:"min=0"`
	Kettles   int `json:"kettles" binding:"min=0"`
}

func (c RoomContentRequest) toDomain() room.Content {
	return room.Content{
		Chairs:    c.Chairs,
		Beds:      c.Beds,
		Desks:     c.Desks,
		Balconies: c.Balconies,
		TVs:       c.TVs,
		Fridges:   c.Fridges,
		Kettles:   c.Kettles,
	}
}

type CreateRoomRequest struct {
	Number        int                `json:"number" binding:"required,min=1" example:"101"`
	Type          string             `json:"type" binding:"required,max=50" example:"Double"`
	Capacity      int                `json:"capacity" binding:"min=0" example:"2"`
	PricePerNight int                `json:"price_per_night" binding:"min=0" example:"120"`
	PhotoURL      string             `json:"photo_url" binding:"omitempty,max=255"`
	Content       RoomContentRequest `json:"content"`
}

func (r *CreateRoomRequest) ToDomain() room.Attributes {
	return room.Attributes{
		Number:        r.Number,
		Type:          r.Type,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		PhotoURL:      r.PhotoURL,
		Content:       r.Content.toDomain(),
	}
}

// UpdateRoomRequest is a partial update; omitted fields keep their value.
type UpdateRoomRequest struct {
	Number        *int                `json:"number" binding:"omitempty,min=1"`
	Type          *string             `json:"type" binding:"omitempty,max=50"`
	Capacity      *int                `json:"capacity" binding:"omitempty,min=0"`
	PricePerNight *int                `json:"price_per_night" binding:"omitempty,min=0"`
	PhotoURL      *string             `json:"photo_url" binding:"omitempty,max=255"`
	Content       *RoomContentRequest `json:"content"`
}

func (r *UpdateRoomRequest) ToDomain(current room.Attributes) room.Attributes {
	attrs := room.Attributes{
		Number:        patch.Coalesce(r.Number, current.Number),
		Type:          patch.Coalesce(r.Type, current.Type),
		Capacity:      patch.Coalesce(r.Capacity, current.Capacity),
		PricePerNight: patch.Coalesce(r.PricePerNight, current.PricePerNight),
		PhotoURL:      patch.Coalesce(r.PhotoURL, current.PhotoURL),
		Content:       current.Content,
	}
	if r.Content != nil {
		attrs.Content = r.Content.toDomain()
	}
	return attrs
}

type AvailabilityQuery struct {
	StartDate string `form:"start_date" binding:"required_with=EndDate,omitempty,isodate"`
	EndDate   string `form:"end_date" binding:"required_with=StartDate,omitempty,isodate"`
}

func (q *AvailabilityQuery) IsSet() bool {
	return q.StartDate != "" && q.EndDate != ""
}

func (q *AvailabilityQuery) ToDomain() (time.Time, time.Time, error) {
	start, err := reservation.ParseDate(q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := reservation.ParseDate(q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
