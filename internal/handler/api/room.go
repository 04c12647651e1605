package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds  commands.RoomCommands
	rooms queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, rooms queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, rooms: rooms}
}

// @Summary List rooms
// @Description List all rooms, or only those free for the whole window when both dates are given
// @Tags rooms
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	var (
		views []*queries.RoomView
		err   error
	)
	if q.IsSet() {
		start, end, parseErr := q.ToDomain()
		if parseErr != nil {
			httperr.Abort(c, errs.Mark(parseErr, errs.ErrInvalidArgument))
			return
		}
		views, err = h.rooms.ListAvailable(c.Request.Context(), start, end)
	} else {
		views, err = h.rooms.List(c.Request.Context())
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(created))
}

// @Summary Update room
// @Description Absent fields keep their current value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room fields"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(updated))
}

// @Summary Delete room
// @Description Fails with 409 while the room still has reservations
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
