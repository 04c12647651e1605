package converter

import (
	"hotel-reservation/internal/domain/room"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
)

// int32 conversions are bounded by room.MaxValue.
func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	c := r.Content()
	return sqlc.CreateRoomParams{
		ID:            r.ID(),
		RoomNumber:    int32(r.Number()),        // #nosec G115
		RoomType:      r.Type(),
		Capacity:      int32(r.Capacity()),      // #nosec G115
		PricePerNight: int32(r.PricePerNight()), // #nosec G115
		PhotoUrl:      r.PhotoURL(),
		Chairs:        int32(c.Chairs),    // #nosec G115
		Beds:          int32(c.Beds),      // #nosec G115
		Desks:         int32(c.Desks),     // #nosec G115
		Balconies:     int32(c.Balconies), // #nosec G115
		Tvs:           int32(c.TVs),       // #nosec G115
		Fridges:       int32(c.Fridges),   // #nosec G115
		Kettles:       int32(c.Kettles),   // #nosec G115
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams(RoomToCreateParams(r))
}

func RoomFromInfra(row sqlc.Rooms) *room.Room {
	return room.ReconstructRoom(row.ID, room.Attributes{
		Number:        int(row.RoomNumber),
		Type:          row.RoomType,
		Capacity:      int(row.Capacity),
		PricePerNight: int(row.PricePerNight),
		PhotoURL:      row.PhotoUrl,
		Content: room.Content{
			Chairs:    int(row.Chairs),
			Beds:      int(row.Beds),
			Desks:     int(row.Desks),
			Balconies: int(row.Balconies),
			TVs:       int(row.Tvs),
			Fridges:   int(row.Fridges),
			Kettles:   int(row.Kettles),
		},
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
