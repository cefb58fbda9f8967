package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// Every failure the API can produce is one of these kinds. The mapping
// from kind to status and envelope shape is closed: handlers and
// middleware never pick status codes themselves.
type ErrKind int

const (
	KindValidation ErrKind = iota
	KindMalformedBody
	KindUnsupportedMedia
	KindMethodNotAllowed
	KindUnknownRoute
	KindBodyTooLarge
	KindRateLimited
	KindNotFound
	KindInternal
)

// Status returns the fixed HTTP status for the kind.
func (k ErrKind) Status() int {
	switch k {
	case KindValidation, KindMalformedBody:
		return http.StatusBadRequest
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindUnknownRoute, KindNotFound:
		return http.StatusNotFound
	case KindBodyTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

const (
	validationMessage = "Not correct response body."
	internalMessage   = "Server can't process the request."
)

// ErrorBody is the wire error envelope. Absent fields are omitted.
type ErrorBody struct {
	Message   string            `json:"message,omitempty"`
	Status    int               `json:"status"`
	Timestamp int64             `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func writeError(w http.ResponseWriter, kind ErrKind, message string, fieldErrors map[string]string) {
	status := kind.Status()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UnixMilli(),
		Errors:    fieldErrors,
	})
}

// JSONError renders the minimal envelope (status and timestamp only)
// for transport-level failures.
func JSONError(w http.ResponseWriter, kind ErrKind) {
	writeError(w, kind, "", nil)
}

// JSONValidationError renders a 400 with one entry per invalid field.
func JSONValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	writeError(w, KindValidation, validationMessage, fieldErrors)
}

// JSONNotFound renders a 404 carrying the condition's message.
func JSONNotFound(w http.ResponseWriter, message string) {
	writeError(w, KindNotFound, message, nil)
}

// JSONInternalError renders a 500 with a fixed generic message.
// Internal detail never reaches the caller.
func JSONInternalError(w http.ResponseWriter) {
	writeError(w, KindInternal, internalMessage, nil)
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
