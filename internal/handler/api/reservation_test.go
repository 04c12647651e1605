//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/api"
	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	userID uuid.UUID
	roles  user.Roles
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, reservation.NewFactory(clk, time.UTC))

	s.userID = uuid.New()
	s.roles = user.Roles{user.RoleUser}

	// Stand-in for RequireAuth
	authed := s.router.Group("/", func(c *gin.Context) {
		middleware.SetUser(c, s.userID, s.roles)
		c.Next()
	})
	authed.POST("/reservations", s.handler.Create)
	authed.GET("/reservations/mine", s.handler.ListMine)
	authed.DELETE("/reservations/:id", s.handler.Delete)
	authed.GET("/admin/reservations", s.handler.List)
	authed.GET("/admin/reservations/:id", s.handler.Get)
	authed.PUT("/admin/reservations/:id/dates", s.handler.UpdateDates)
	authed.PUT("/admin/reservations/:id/status", s.handler.UpdateStatus)
	authed.GET("/admin/users/:id/reservations", s.handler.ListByUser)
	authed.GET("/admin/rooms/:id/reservations", s.handler.ListUpcomingByRoom)
	s.router.GET("/rooms/:id/reserved-dates", s.handler.ReservedDates)
	s.router.POST("/anonymous/reservations", s.handler.Create)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder().WithUserID(uuid.Nil)
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success", func() {
		view := b.WithUserID(s.userID).BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")

		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("2025-03-10", got.StartDate)
		s.Equal("2025-03-15", got.EndDate)
		s.Equal(5, got.Nights)
		s.Equal(5*view.PricePerNight, got.TotalPrice)
		s.Equal(view.RoomNumber, got.Room.Number)
	})

	badRequests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing room id", testutil.Field("room_id", nil)},
		{"malformed room id", testutil.Field("room_id", "not-a-uuid")},
		{"missing start date", testutil.Field("start_date", nil)},
		{"non ISO start date", testutil.Field("start_date", "10/03/2025")},
		{"non ISO end date", testutil.Field("end_date", "2025-3-15")},
		{"status too long", testutil.Field("status", strings.Repeat("x", 51))},
	}
	for _, c := range badRequests {
		s.Run(c.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, c.mutate), "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		})
	}

	useCaseErrors := []struct {
		name string
		err  error
		code int
	}{
		{"overlap", errs.Mark(errs.New("room booked"), errs.ErrReservationConflict), http.StatusConflict},
		{"reversed dates", errs.Mark(reservation.ErrInvalidDateRange, errs.ErrInvalidArgument), http.StatusBadRequest},
		{"room missing", errs.ErrRoomNotFound, http.StatusNotFound},
		{"store failure", errs.Mark(errs.New("timeout"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError},
	}
	for _, c := range useCaseErrors {
		s.Run(c.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, c.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")
			httptest.AssertErrorResponse(s.T(), w, c.code, "")
		})
	}

	s.Run("unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/anonymous/reservations", testutil.DtoMap(s.T(), reqBody), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithUserID(s.userID).BuildView(),
		builder.NewReservationBuilder().WithUserID(s.userID).WithDates("2025-04-01", "2025-04-02").BuildView(),
	}
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/mine", nil, "")

	var got []resdto.UserReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Require().Len(got, 2)
	s.Equal("2025-04-01", got[1].StartDate)
	s.Equal(views[1].PricePerNight, got[1].TotalPrice)
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("guest deletes as non-admin", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, commands.Actor{UserID: s.userID, Admin: false}).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("admin flag follows roles", func() {
		s.roles = user.Roles{user.RoleUser, user.RoleAdmin}
		defer func() { s.roles = user.Roles{user.RoleUser} }()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, commands.Actor{UserID: s.userID, Admin: true}).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not owned", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, gomock.Any()).Return(errs.ErrReservationNotOwned)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "another user")
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, gomock.Any()).Return(errs.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/123", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id format")
	})
}

func (s *ReservationHandlerTestSuite) TestReservedDates() {
	roomID := uuid.New()
	start, _ := reservation.ParseDate("2025-03-10")
	end, _ := reservation.ParseDate("2025-03-15")
	s.mockQueries.EXPECT().ListReservedRanges(gomock.Any(), roomID).
		Return([]queries.ReservedRange{{StartDate: start, EndDate: end}}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String()+"/reserved-dates", nil, "")

	var got []resdto.ReservedRangeResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal([]resdto.ReservedRangeResponse{{StartDate: "2025-03-10", EndDate: "2025-03-15"}}, got)
}

func (s *ReservationHandlerTestSuite) TestAdminListAndGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ReservationView{view}, nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil, "")
	var list []resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
	s.Len(list, 1)

	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/"+view.ID.String(), nil, "")
	var got resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(view.Username, got.User.Username)
	s.Equal("2025-03-01", got.AddedDate)
}

func (s *ReservationHandlerTestSuite) TestUpdateDates() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/dates"

	s.Run("end only", func() {
		end := "2025-03-20"
		s.mockCommands.EXPECT().UpdateDates(gomock.Any(), id, reqdto.UpdateReservationDatesRequest{EndDate: &end}).
			Return(builder.NewReservationBuilder().WithID(id).WithDates("2025-03-10", end).BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"end_date": end}, "")
		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(end, got.EndDate)
	})

	s.Run("malformed date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"start_date": "tomorrow"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("conflict", func() {
		s.mockCommands.EXPECT().UpdateDates(gomock.Any(), id, gomock.Any()).Return(nil, errs.ErrReservationConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"start_date": "2025-03-09"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "overlap")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/status"

	s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, reqdto.UpdateReservationStatusRequest{Status: "Confirmed"}).
		Return(builder.NewReservationBuilder().WithID(id).WithStatus("Confirmed").BuildView(), nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "Confirmed"}, "")
	var got resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("Confirmed", got.Status)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *ReservationHandlerTestSuite) TestListByUser() {
	userID := uuid.New()
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, errs.ErrUserNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+userID.String()+"/reservations", nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
}

func (s *ReservationHandlerTestSuite) TestListUpcomingByRoom() {
	roomID := uuid.New()
	url := "/admin/rooms/" + roomID.String() + "/reservations"

	s.Run("from defaults to today", func() {
		today, _ := reservation.ParseDate("2025-03-01")
		s.mockQueries.EXPECT().ListUpcomingByRoom(gomock.Any(), roomID, today).Return([]*queries.ReservationView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		var got []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Empty(got)
	})

	s.Run("explicit from", func() {
		from, _ := reservation.ParseDate("2025-06-01")
		s.mockQueries.EXPECT().ListUpcomingByRoom(gomock.Any(), roomID, from).Return([]*queries.ReservationView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2025-06-01", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("malformed from", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=June", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}
