package book

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"bookservice/internal/httpx"
)

// HTTPHandler exposes the book use cases over HTTP. It binds and
// validates request bodies before the service runs; all status-code
// decisions are delegated to the httpx envelope writers.
type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// @Summary Create new Book
// @Tags books
// @Accept json
// @Produce json
// @Param book body BookDTO true "Book payload"
// @Success 201 {object} BookDTO
// @Failure 400 {object} httpx.ErrorBody
// @Router /api/v1/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decodeDTO(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// @Summary Update existing Book by id
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param book body BookDTO true "Book payload"
// @Success 200 {object} BookDTO
// @Failure 404 {object} httpx.ErrorBody
// @Router /api/v1/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	dto, ok := h.decodeDTO(w, r)
	if !ok {
		return
	}
	updated, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// @Summary Get list of Books
// @Tags books
// @Produce json
// @Success 200 {array} BookDTO
// @Router /api/v1/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dtos)
}

// @Summary Get existing Book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} BookDTO
// @Failure 404 {object} httpx.ErrorBody
// @Router /api/v1/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	dto, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

// @Summary Delete existing Book by id
// @Tags books
// @Param id path int true "Book id"
// @Success 202
// @Failure 404 {object} httpx.ErrorBody
// @Router /api/v1/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// decodeDTO binds and validates the request body. On failure the
// envelope has already been written and ok is false.
func (h *HTTPHandler) decodeDTO(w http.ResponseWriter, r *http.Request) (BookDTO, bool) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		httpx.JSONError(w, httpx.KindUnsupportedMedia)
		return BookDTO{}, false
	}

	var dto BookDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, httpx.KindBodyTooLarge)
		} else {
			httpx.JSONError(w, httpx.KindMalformedBody)
		}
		return BookDTO{}, false
	}

	if fieldErrors := httpx.ValidateStruct(dto); fieldErrors != nil {
		httpx.JSONValidationError(w, fieldErrors)
		return BookDTO{}, false
	}
	return dto, true
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, httpx.KindMalformedBody)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONNotFound(w, err.Error())
		return
	}
	log.Printf("unexpected error: %v", err)
	httpx.JSONInternalError(w)
}
