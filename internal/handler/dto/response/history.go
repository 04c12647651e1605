package response

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryItemResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	RoomID        *uuid.UUID `json:"room_id,omitempty"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	RoomNumber    int        `json:"room_number"`
	RoomType      string     `json:"room_type"`
	Username      string     `json:"username"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	AddedDate     string     `json:"added_date"`
	Status        string     `json:"status"`
	ArchivedAt    time.Time  `json:"archived_at"`
}

type HistoryPageResponse struct {
	Items []*HistoryItemResponse `json:"items"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Size  int                    `json:"size"`
}

type HistoryStatisticResponse struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	RoomNumber int    `json:"room_number"`
	RoomType   string `json:"room_type"`
}

type ArchiveReportResponse struct {
	Today     string      `json:"today,omitempty"`
	Scanned   int         `json:"scanned"`
	Archived  int         `json:"archived"`
	Unchanged int         `json:"unchanged"`
	Failed    int         `json:"failed"`
	FailedIDs []uuid.UUID `json:"failed_ids"`
	Skipped   bool        `json:"skipped"`
}

func FromHistoryPage(p *queries.HistoryPage) *HistoryPageResponse {
	items := make([]*HistoryItemResponse, len(p.Items))
	for i, h := range p.Items {
		items[i] = &HistoryItemResponse{
			ID:            h.ID,
			ReservationID: h.ReservationID,
			RoomID:        h.RoomID,
			UserID:        h.UserID,
			RoomNumber:    h.RoomNumber,
			RoomType:      h.RoomType,
			Username:      h.Username,
			StartDate:     formatDate(h.StartDate),
			EndDate:       formatDate(h.EndDate),
			AddedDate:     formatDate(h.AddedDate),
			Status:        h.Status,
			ArchivedAt:    h.ArchivedAt,
		}
	}
	return &HistoryPageResponse{Items: items, Total: p.Total, Page: p.Page, Size: p.Size}
}

func FromHistoryStatistics(stats []queries.HistoryStatistic) []HistoryStatisticResponse {
	res := make([]HistoryStatisticResponse, len(stats))
	for i, s := range stats {
		res[i] = HistoryStatisticResponse{
			StartDate:  formatDate(s.StartDate),
			EndDate:    formatDate(s.EndDate),
			RoomNumber: s.RoomNumber,
			RoomType:   s.RoomType,
		}
	}
	return res
}

func FromArchiveReport(r *commands.ArchiveReport) *ArchiveReportResponse {
	resp := &ArchiveReportResponse{
		Scanned:   r.Scanned,
		Archived:  r.Archived,
		Unchanged: r.Unchanged,
		Failed:    r.Failed,
		FailedIDs: r.FailedIDs,
		Skipped:   r.Skipped,
	}
	if !r.Today.IsZero() {
		resp.Today = formatDate(r.Today)
	}
	return resp
}

func formatDate(t time.Time) string {
	return t.Format(reservation.DateLayout)
}
