package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookservice/internal/book"
)

// TestBook is a persisted-looking book for tests.
var TestBook = book.Book{
	Record: book.Record{
		ID:        789,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	},
	Title:       "Test Book Title",
	Description: "A test book description",
	Author:      "Test Author",
	ISBN:        "978-0-123456-78-9",
}

// ValidDTO returns a create/update payload that passes validation.
func ValidDTO() book.BookDTO {
	return book.BookDTO{
		Title:       "book",
		Description: "book",
		Author:      "book",
		ISBN:        "book",
	}
}

// NewRequest creates an HTTP request for testing. A non-nil body is
// JSON-encoded and the content type set accordingly.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse holds a decoded test response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse drains and decodes the recorded response body.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
