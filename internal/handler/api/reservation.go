package api

import (
	"net/http"

	"hotel-reservation/internal/domain/reservation"
	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds    commands.ReservationCommands
	q       queries.ReservationQueries
	factory *reservation.Factory
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, factory *reservation.Factory) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, factory: factory}
}

// @Summary Create reservation
// @Description Book a room for the half-open stay [start_date, end_date)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary My reservations
// @Description Reservations of the current user ordered by start date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations/mine [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserReservationViews(views))
}

// @Summary Delete reservation
// @Description Owners may delete their own reservation, admins any
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roles, _ := middleware.GetUserRoles(c)

	actor := commands.Actor{UserID: userID, Admin: roles.IsAdmin()}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reserved dates of a room
// @Description Occupied [start_date, end_date) ranges
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReservedRangeResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/reserved-dates [get]
func (h *ReservationHandler) ReservedDates(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ranges, err := h.q.ListReservedRanges(c.Request.Context(), roomID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservedRanges(ranges))
}

// @Summary List reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation dates
// @Description Omitted dates keep their current value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationDatesRequest true "New dates"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/dates [put]
func (h *ReservationHandler) UpdateDates(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	view, err := h.cmds.UpdateDates(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id}/status [put]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reservations of a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.UserReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/reservations [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserReservationViews(views))
}

// @Summary Upcoming reservations of a room
// @Description Reservations starting on or after from (default today), ordered by start date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param from query string false "First start date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id}/reservations [get]
func (h *ReservationHandler) ListUpcomingByRoom(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.UpcomingReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	from, err := q.ToDomain(h.factory.Today())
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrInvalidArgument))
		return
	}

	views, err := h.q.ListUpcomingByRoom(c.Request.Context(), roomID, from)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
