package response

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRoomResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        int       `json:"number"`
	Type          string    `json:"type"`
	PhotoURL      string    `json:"photo_url"`
	PricePerNight int       `json:"price_per_night"`
}

type ReservationUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// ReservationResponse is the admin view of a reservation.
type ReservationResponse struct {
	ID         uuid.UUID               `json:"id"`
	StartDate  string                  `json:"start_date"`
	EndDate    string                  `json:"end_date"`
	AddedDate  string                  `json:"added_date"`
	Status     string                  `json:"status"`
	Nights     int                     `json:"nights"`
	TotalPrice int                     `json:"total_price"`
	User       ReservationUserResponse `json:"user"`
	Room       ReservationRoomResponse `json:"room"`
}

// UserReservationResponse is what a guest sees of their own booking.
type UserReservationResponse struct {
	ID         uuid.UUID               `json:"id"`
	StartDate  string                  `json:"start_date"`
	EndDate    string                  `json:"end_date"`
	Status     string                  `json:"status"`
	TotalPrice int                     `json:"total_price"`
	Room       ReservationRoomResponse `json:"room"`
}

type ReservedRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	nights, total := pricing(v)
	return &ReservationResponse{
		ID:         v.ID,
		StartDate:  formatDate(v.StartDate),
		EndDate:    formatDate(v.EndDate),
		AddedDate:  formatDate(v.AddedDate),
		Status:     v.Status,
		Nights:     nights,
		TotalPrice: total,
		User: ReservationUserResponse{
			ID:       v.UserID,
			Username: v.Username,
		},
		Room: roomSummary(v),
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		res[i] = FromReservationView(v)
	}
	return res
}

func FromUserReservationViews(vs []*queries.ReservationView) []*UserReservationResponse {
	res := make([]*UserReservationResponse, len(vs))
	for i, v := range vs {
		_, total := pricing(v)
		res[i] = &UserReservationResponse{
			ID:         v.ID,
			StartDate:  formatDate(v.StartDate),
			EndDate:    formatDate(v.EndDate),
			Status:     v.Status,
			TotalPrice: total,
			Room:       roomSummary(v),
		}
	}
	return res
}

func FromReservedRanges(rs []queries.ReservedRange) []ReservedRangeResponse {
	res := make([]ReservedRangeResponse, len(rs))
	for i, r := range rs {
		res[i] = ReservedRangeResponse{
			StartDate: formatDate(r.StartDate),
			EndDate:   formatDate(r.EndDate),
		}
	}
	return res
}

func roomSummary(v *queries.ReservationView) ReservationRoomResponse {
	return ReservationRoomResponse{
		ID:            v.RoomID,
		Number:        v.RoomNumber,
		Type:          v.RoomType,
		PhotoURL:      v.PhotoURL,
		PricePerNight: v.PricePerNight,
	}
}

func pricing(v *queries.ReservationView) (nights, total int) {
	dates, err := reservation.NewDateRange(v.StartDate, v.EndDate)
	if err != nil {
		return 0, 0
	}
	return dates.Nights(), reservation.TotalPrice(dates, v.PricePerNight)
}
