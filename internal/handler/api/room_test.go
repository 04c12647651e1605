//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/api"
	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/pkg/errs"
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

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/:id", s.handler.Get)
	s.router.POST("/admin/rooms", s.handler.Create)
	s.router.PUT("/admin/rooms/:id", s.handler.Update)
	s.router.DELETE("/admin/rooms/:id", s.handler.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoomHandlerTestSuite) TestList() {
	views := []*queries.RoomView{builder.NewRoomBuilder().BuildView(), builder.NewRoomBuilder().WithNumber(102).BuildView()}

	s.Run("all rooms without a window", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		var got []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Len(got, 2)
		s.Equal(views[0].Content.Beds, got[0].Content.Beds)
		s.Equal(102, got[1].Number)
	})

	s.Run("available rooms in a window", func() {
		start, _ := reservation.ParseDate("2025-03-10")
		end, _ := reservation.ParseDate("2025-03-12")
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), start, end).Return(views[:1], nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?start_date=2025-03-10&end_date=2025-03-12", nil, "")
		var got []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 1)
	})

	s.Run("reversed window", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(reservation.ErrInvalidWindow, errs.ErrInvalidArgument))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?start_date=2025-03-12&end_date=2025-03-10", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request data")
	})

	for _, q := range []string{"start_date=2025-03-10", "end_date=2025-03-10", "start_date=March&end_date=2025-03-10"} {
		s.Run("bad query "+q, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		})
	}
}

func (s *RoomHandlerTestSuite) TestGet() {
	view := builder.NewRoomBuilder().BuildView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+view.ID.String(), nil, "")
	var got resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(view.ID, got.ID)
	s.Equal(view.PhotoURL, got.PhotoURL)

	missing := uuid.New()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), missing).Return(nil, errs.ErrRoomNotFound)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+missing.String(), nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
}

func (s *RoomHandlerTestSuite) TestCreate() {
	b := builder.NewRoomBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(b.BuildDomain(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", testutil.DtoMap(s.T(), reqBody), "")
		var got resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(b.ID, got.ID)
		s.Equal(b.Content.Kettles, got.Content.Kettles)
	})

	for _, c := range []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing number", testutil.Field("number", nil)},
		{"zero number", testutil.Field("number", 0)},
		{"missing type", testutil.Field("type", nil)},
		{"negative price", testutil.Field("price_per_night", -1)},
		{"negative content", testutil.Field("content", map[string]any{"beds": -1})},
	} {
		s.Run(c.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", testutil.DtoMap(s.T(), reqBody, c.mutate), "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		})
	}

	s.Run("duplicate number", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrRoomNumberTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", testutil.DtoMap(s.T(), reqBody), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Room number already exists")
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	b := builder.NewRoomBuilder().WithPricePerNight(250)
	price := 250
	s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, reqdto.UpdateRoomRequest{PricePerNight: &price}).Return(b.BuildDomain(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/rooms/"+b.ID.String(), map[string]any{"price_per_night": 250}, "")
	var got resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(250, got.PricePerNight)
}

func (s *RoomHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/"+id.String(), nil, "")
	s.Equal(http.StatusNoContent, w.Code)

	s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrRoomHasReservations)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/"+id.String(), nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "active reservations")
}
