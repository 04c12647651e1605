package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the joined projection of a reservation with its user and room.
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	AddedDate     time.Time `json:"added_date"`
	Status        string    `json:"status"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomNumber    int       `json:"room_number"`
	RoomType      string    `json:"room_type"`
	PhotoURL      string    `json:"photo_url"`
	PricePerNight int       `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReservedRange is an occupied [StartDate, EndDate) span of a room.
type ReservedRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type RoomContentView struct {
	Chairs    int `json:"chairs"`
	Beds      int `json:"beds"`
	Desks     int `json:"desks"`
	Balconies int `json:"balconies"`
	TVs       int `json:"tvs"`
	Fridges   int `json:"fridges"`
	Kettles   int `json:"kettles"`
}

type RoomView struct {
	ID            uuid.UUID       `json:"id"`
	Number        int             `json:"number"`
	Type          string          `json:"type"`
	Capacity      int             `json:"capacity"`
	PricePerNight int             `json:"price_per_night"`
	PhotoURL      string          `json:"photo_url"`
	Content       RoomContentView `json:"content"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HistoryView keeps the room and user snapshot taken at archival time.
// RoomID and UserID are nil once the referenced row is gone.
type HistoryView struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	RoomID        *uuid.UUID `json:"room_id,omitempty"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	RoomNumber    int        `json:"room_number"`
	RoomType      string     `json:"room_type"`
	Username      string     `json:"username"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	AddedDate     time.Time  `json:"added_date"`
	Status        string     `json:"status"`
	ArchivedAt    time.Time  `json:"archived_at"`
}

type HistoryPage struct {
	Items []*HistoryView `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

type HistoryStatistic struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	RoomNumber int       `json:"room_number"`
	RoomType   string    `json:"room_type"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Roles    []string  `json:"roles"`
}
