package httperr

import (
	"net/http"

	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// Checked in order; the first match wins.
var mappings = []mapping{
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrReservationConflict, http.StatusConflict, "Reservation dates overlap an existing reservation"},
	{errs.ErrRoomNumberTaken, http.StatusConflict, "Room number already exists"},
	{errs.ErrRoomHasReservations, http.StatusConflict, "Room has active reservations"},
	{errs.ErrUsernameTaken, http.StatusConflict, "Username already exists"},
	{errs.ErrInvalidArgument, http.StatusBadRequest, "Invalid request data"},
	{errs.ErrReservationNotOwned, http.StatusForbidden, "Reservation belongs to another user"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
}

// StatusOf resolves the HTTP status and public message for a use case error.
func StatusOf(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.sentinel) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort writes a use case error with its mapped status.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
