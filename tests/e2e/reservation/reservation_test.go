//go:build e2e

package reservation_test

import (
	"net/http"
	"sync"
	"testing"

	"hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/tests/common/authtest"
	"hotel-reservation/tests/common/dbtest"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) book(token string, roomID uuid.UUID, start, end string) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
		request.CreateReservationRequest{RoomID: roomID, StartDate: start, EndDate: end}, token)
	return w.Code
}

func (s *reservationSuite) TestCreate() {
	s.Run("books a free room", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest01")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{RoomID: roomID, StartDate: "2099-03-10", EndDate: "2099-03-12"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "2099-03-10", got.StartDate)
		require.Equal(t, "2099-03-12", got.EndDate)
		require.Equal(t, "Pending", got.Status)
		require.Equal(t, 2, got.Nights)
		require.Equal(t, 200, got.TotalPrice)
		require.Equal(t, userID, got.User.ID)
		require.Equal(t, 101, got.Room.Number)
	})

	s.Run("overlap boundaries", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest01")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		otherRoom := dbtest.CreateTestRoom(t, s.DB, 102, "Double")

		require.Equal(t, http.StatusCreated, s.book(token, roomID, "2099-03-10", "2099-03-12"))

		cases := []struct {
			start, end string
			status     int
		}{
			{"2099-03-10", "2099-03-12", http.StatusConflict},
			{"2099-03-11", "2099-03-13", http.StatusConflict},
			{"2099-03-09", "2099-03-11", http.StatusConflict},
			{"2099-03-01", "2099-03-20", http.StatusConflict},
			{"2099-03-12", "2099-03-14", http.StatusCreated},
			{"2099-03-08", "2099-03-10", http.StatusCreated},
		}
		for _, c := range cases {
			require.Equal(t, c.status, s.book(token, roomID, c.start, c.end), "%s..%s", c.start, c.end)
		}
		require.Equal(t, http.StatusCreated, s.book(token, otherRoom, "2099-03-10", "2099-03-12"))
		require.Equal(t, 4, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("rejects bad input", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest01")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")

		require.Equal(t, http.StatusBadRequest, s.book(token, roomID, "2099-03-12", "2099-03-10"))
		require.Equal(t, http.StatusBadRequest, s.book(token, roomID, "2099-03-10", "2099-03-10"))
		require.Equal(t, http.StatusBadRequest, s.book(token, roomID, "10/03/2099", "2099-03-12"))
		require.Equal(t, http.StatusNotFound, s.book(token, uuid.New(), "2099-03-10", "2099-03-12"))
		require.Equal(t, http.StatusUnauthorized, s.book("", roomID, "2099-03-10", "2099-03-12"))
	})

	s.Run("concurrent bookings of one room admit exactly one", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest01")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")

		const n = 8
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					request.CreateReservationRequest{RoomID: roomID, StartDate: "2099-05-01", EndDate: "2099-05-04"}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, code)
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

func (s *reservationSuite) TestOwnership() {
	s.Run("guests see and cancel only their own", func() {
		t := s.T()
		_, alice := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		bobID, bob := authtest.CreateAndLogin(t, s.DB, s.Router, "bob")
		_, admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin01", "user", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		bobsID := dbtest.CreateTestReservation(t, s.DB, roomID, bobID, "2099-04-01", "2099-04-03")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/mine", nil, alice)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/mine", nil, bob)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), bobsID.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+bobsID.String(), nil, alice)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/reservations", nil, bob)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/reservations/"+bobsID.String(), nil, admin)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Zero(t, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

func (s *reservationSuite) TestAdminUpdates() {
	s.Run("dates and status", func() {
		t := s.T()
		guestID := dbtest.CreateTestUser(t, s.DB, "guest01")
		_, admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin01", "user", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		first := dbtest.CreateTestReservation(t, s.DB, roomID, guestID, "2099-06-01", "2099-06-05")
		dbtest.CreateTestReservation(t, s.DB, roomID, guestID, "2099-06-10", "2099-06-12")

		end := "2099-06-08"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admin/reservations/"+first.String()+"/dates",
			request.UpdateReservationDatesRequest{EndDate: &end}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), `"end_date":"2099-06-08"`)

		end = "2099-06-11"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admin/reservations/"+first.String()+"/dates",
			request.UpdateReservationDatesRequest{EndDate: &end}, admin)
		require.Equal(t, http.StatusConflict, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admin/reservations/"+first.String()+"/status",
			request.UpdateReservationStatusRequest{Status: "Confirmed"}, admin)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"status":"Confirmed"`)
	})

	s.Run("room with reservations cannot be deleted", func() {
		t := s.T()
		guestID := dbtest.CreateTestUser(t, s.DB, "guest01")
		_, admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin01", "user", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		dbtest.CreateTestReservation(t, s.DB, roomID, guestID, "2099-06-01", "2099-06-05")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/rooms/"+roomID.String(), nil, admin)
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "rooms"))
	})
}

func (s *reservationSuite) TestReservedDatesAndAvailability() {
	s.Run("reserved ranges", func() {
		t := s.T()
		guestID := dbtest.CreateTestUser(t, s.DB, "guest01")
		booked := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		dbtest.CreateTestReservation(t, s.DB, booked, guestID, "2099-07-01", "2099-07-03")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms/"+booked.String()+"/reserved-dates", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[{"start_date":"2099-07-01","end_date":"2099-07-03"}]`, w.Body.String())
	})

	s.Run("availability uses a closed window", func() {
		t := s.T()
		guestID := dbtest.CreateTestUser(t, s.DB, "guest01")
		booked := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		free := dbtest.CreateTestRoom(t, s.DB, 102, "Single")
		dbtest.CreateTestReservation(t, s.DB, booked, guestID, "2025-03-01", "2025-03-10")

		cases := []struct {
			name       string
			start, end string
			bookedFree bool
		}{
			{"window inside stay", "2025-03-05", "2025-03-06", false},
			{"window starts on checkout day", "2025-03-10", "2025-03-12", false},
			{"window ends on check-in day", "2025-02-25", "2025-03-01", false},
			{"window covers stay", "2025-02-01", "2025-03-31", false},
			{"window before stay", "2025-02-20", "2025-02-28", true},
			{"window after stay", "2025-03-11", "2025-03-15", true},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				w := httptest.PerformRequest(t, s.Router, http.MethodGet,
					"/api/rooms?start_date="+c.start+"&end_date="+c.end, nil, "")
				require.Equal(t, http.StatusOK, w.Code, w.Body.String())

				var rooms []resdto.RoomResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
				ids := make([]uuid.UUID, 0, len(rooms))
				for _, r := range rooms {
					ids = append(ids, r.ID)
				}
				require.Contains(t, ids, free)
				if c.bookedFree {
					require.Len(t, ids, 2)
					require.Contains(t, ids, booked)
				} else {
					require.Equal(t, []uuid.UUID{free}, ids)
				}
			})
		}
	})
}

func (s *reservationSuite) TestArchival() {
	s.Run("moves ended stays into history", func() {
		t := s.T()
		guestID := dbtest.CreateTestUser(t, s.DB, "guest01")
		_, admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin01", "user", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, 101, "Double")
		past := dbtest.CreateTestReservation(t, s.DB, roomID, guestID, "2020-01-10", "2020-01-12")
		future := dbtest.CreateTestReservation(t, s.DB, roomID, guestID, "2099-01-10", "2099-01-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/archival/run", nil, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var report resdto.ArchiveReportResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))
		require.Equal(t, 1, report.Archived)
		require.Zero(t, report.Failed)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation_history"))

		var remaining uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id FROM reservations").Scan(&remaining))
		require.Equal(t, future, remaining)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/history", nil, admin)
		require.Equal(t, http.StatusOK, w.Code)
		var page resdto.HistoryPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 1)
		require.Equal(t, past, page.Items[0].ReservationID)
		require.Equal(t, "guest01", page.Items[0].Username)
		require.Equal(t, 101, page.Items[0].RoomNumber)
		require.Equal(t, "Archived", page.Items[0].Status)

		report2, err := s.Archival.Run(t.Context())
		require.NoError(t, err)
		require.Zero(t, report2.Archived, "second run is a no-op")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation_history"))
	})
}
