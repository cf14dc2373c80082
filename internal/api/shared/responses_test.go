package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]any{
		"success": true,
		"message": "created",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("envelope shape", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)

		RespondWithError(recorder, req, http.StatusNotFound, "User not found")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "User not found", body["error"])
		// Status code is for logging only, never serialized.
		assert.NotContains(t, body, "code")
	})

	t.Run("carries trace id from context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		traceID := GetTraceID(req.Context())
		require.NotEmpty(t, traceID)

		recorder := httptest.NewRecorder()
		RespondWithError(recorder, req, http.StatusForbidden, "Forbidden access")

		var body map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, traceID, body["trace_id"])
	})
}

func TestRespondWithErrorAndLog_NeverLeaksRawError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", nil)

	rawErr := errors.New("pq: password authentication failed for user \"admin\"")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError,
		"Failed to create user", rawErr)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "Failed to create user", body["error"])
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "admin")
}
