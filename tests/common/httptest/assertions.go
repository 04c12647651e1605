//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx with a non-nil target, decodes the body.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()
	if !assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that error.message contains wantMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, wantMsg string) {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())

	var env struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String()) {
		return
	}
	if wantMsg != "" {
		assert.Contains(t, env.Error.Message, wantMsg)
	}
}
