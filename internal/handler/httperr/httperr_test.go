//go:build unit

package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
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
		{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
		{errs.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			status, msg := StatusOf(errs.Wrap(c.err, "use case"))
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.message, msg)
		})
	}

	t.Run("marks are followed", func(t *testing.T) {
		status, _ := StatusOf(errs.Mark(errs.New("end before start"), errs.ErrInvalidArgument))
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, *gin.Context) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		Abort(c, err)
		return w, c
	}

	t.Run("bad request carries detail", func(t *testing.T) {
		w, c := run(errs.Mark(errs.New("end date must be after start date"), errs.ErrInvalidArgument))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid request data", body["error"].(map[string]any)["message"])
		assert.Contains(t, body["detail"], "end date must be after start date")
		assert.True(t, c.IsAborted())
		assert.Len(t, c.Errors, 1)
	})

	t.Run("server errors hide detail", func(t *testing.T) {
		w, _ := run(errs.Wrap(errs.ErrDatabaseOperationFailed, "connection refused"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.NotContains(t, w.Body.String(), "detail")
	})

	t.Run("nil error panics", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		assert.Panics(t, func() { AbortWithError(c, http.StatusBadRequest, nil, "x", nil) })
	})
}
