package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrKind_Status(t *testing.T) {
	tests := []struct {
		kind ErrKind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindMalformedBody, http.StatusBadRequest},
		{KindUnsupportedMedia, http.StatusUnsupportedMediaType},
		{KindMethodNotAllowed, http.StatusMethodNotAllowed},
		{KindUnknownRoute, http.StatusNotFound},
		{KindBodyTooLarge, http.StatusRequestEntityTooLarge},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Status())
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJSONError_MinimalEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	before := time.Now().UnixMilli()

	JSONError(w, KindMalformedBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	assert.Equal(t, float64(http.StatusBadRequest), body["status"])
	assert.GreaterOrEqual(t, int64(body["timestamp"].(float64)), before)
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "errors")
}

func TestJSONValidationError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONValidationError(w, map[string]string{"title": "must not be blank"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Not correct response body.", body["message"])
	assert.Equal(t, map[string]any{"title": "must not be blank"}, body["errors"])
}

func TestJSONNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	JSONNotFound(w, "Book with id=1 was not found.")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Book with id=1 was not found.", body["message"])
	assert.NotContains(t, body, "errors")
}

func TestJSONInternalError_FixedMessage(t *testing.T) {
	w := httptest.NewRecorder()

	JSONInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Server can't process the request.", body["message"])
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusCreated, map[string]string{"title": "a book"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"title":"a book"}`, w.Body.String())
}
