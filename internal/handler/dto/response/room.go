package response

import (
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomContentResponse struct {
	Chairs    int `json:"chairs"`
	Beds      int `json:"beds"`
	Desks     int `json:"desks"`
	Balconies int `json:"balconies"`
	TVs       int `json:"tvs"`
	Fridges   int `json:"fridges"`
	Kettles   int `json:"kettles"`
}

type RoomResponse struct {
	ID            uuid.UUID           `json:"id"`
	Number        int                 `json:"number"`
	Type          string              `json:"type"`
	Capacity      int                 `json:"capacity"`
	PricePerNight int                 `json:"price_per_night"`
	PhotoURL      string              `json:"photo_url"`
	Content       RoomContentResponse `json:"content"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to project room view", "room_id", v.ID.String(), "error", err.Error())
	}
	return &resp
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRoomView(v)
	}
	return res
}

func FromRoom(r *room.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:            r.ID(),
		Number:        r.Number(),
		Type:          r.Type(),
		Capacity:      r.Capacity(),
		PricePerNight: r.PricePerNight(),
		PhotoURL:      r.PhotoURL(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if err := copier.Copy(&resp.Content, r.Content()); err != nil {
		slog.Error("failed to project room content", "room_id", r.ID().String(), "error", err.Error())
	}
	return resp
}
