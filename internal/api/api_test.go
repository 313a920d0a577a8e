package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotPayload struct {
	Time      string `json:"time" validate:"required"`
	Available *bool  `json:"available" validate:"required"`
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(KindValidation))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusCode(KindMethodNotSupported))
	assert.Equal(t, http.StatusConflict, StatusCode(KindConflict))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(KindDatastore))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(KindMalformedRequest))
}

func TestDatastore_KeepsRawMessage(t *testing.T) {
	cause := errors.New(`pq: relation "bookings" does not exist`)
	err := Datastore(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindDatastore))
	assert.False(t, IsKind(err, KindValidation))
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", Validation("all fields are required"), http.StatusBadRequest, "all fields are required"},
		{"method", MethodNotSupported(), http.StatusMethodNotAllowed, "method not supported"},
		{"conflict", Conflict("time slot is already booked"), http.StatusConflict, "time slot is already booked"},
		{"plain error", errors.New("connection reset by peer"), http.StatusInternalServerError, "connection reset by peer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/bookings", nil)

			RespondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Error)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body leaves target untouched", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPut, "/slots", nil)

		var p slotPayload
		require.NoError(t, DecodeJSON(c, &p))
		assert.Nil(t, p.Available)
	})

	t.Run("valid body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPut, "/slots", strings.NewReader(`{"time":"10:00","available":false}`))

		var p slotPayload
		require.NoError(t, DecodeJSON(c, &p))
		require.NotNil(t, p.Available)
		assert.False(t, *p.Available)
		assert.Equal(t, "10:00", p.Time)
	})

	t.Run("malformed body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPut, "/slots", strings.NewReader(`{"time":`))

		var p slotPayload
		err := DecodeJSON(c, &p)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindMalformedRequest))
	})
}

func TestRequireFields(t *testing.T) {
	no := false

	assert.NoError(t, RequireFields(slotPayload{Time: "10:00", Available: &no}, "time and available are required"))

	err := RequireFields(slotPayload{Time: "10:00"}, "time and available are required")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.Equal(t, "time and available are required (missing: available)", err.Error())

	err = RequireFields(slotPayload{}, "time and available are required")
	require.Error(t, err)
	assert.Equal(t, "time and available are required (missing: time, available)", err.Error())
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	errs := ValidateStruct(slotPayload{})
	require.Len(t, errs, 2)
	assert.Equal(t, "time", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "time is required", errs[0].Message)
}
