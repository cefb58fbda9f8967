package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// NotFoundError carries the identifier of the missing book. It matches
// ErrNotFound under errors.Is, and its message is what the API reports
// to the caller on a 404.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Book with id=%d was not found.", e.ID)
}

func (e NotFoundError) Unwrap() error { return ErrNotFound }

// Record holds the identity and audit fields shared by the persisted
// entity and the wire DTO. The identifier is assigned by the store on
// first save and is immutable afterwards; book identity is defined by
// it alone.
type Record struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Book is the persisted entity. The four text fields are never blank
// once persisted; CreatedAt is set once, UpdatedAt refreshes on every
// save.
type Book struct {
	Record
	Title       string
	Description string
	Author      string
	ISBN        string
}

// BookDTO is the wire shape accepted and returned by the HTTP boundary.
// Identifier and timestamps are populated on responses and ignored on
// create requests.
type BookDTO struct {
	Record
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Author      string `json:"author" validate:"required,notblank"`
	ISBN        string `json:"isbn" validate:"required,notblank"`
}
