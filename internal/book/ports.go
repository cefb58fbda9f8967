package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// Save persists b. A zero ID inserts and assigns identifier and
	// timestamps on b; a non-zero ID updates the mutable fields and
	// refreshes UpdatedAt, reporting NotFoundError if the row is gone.
	Save(ctx context.Context, b *Book) error
	// GetByID returns the book with the given id, or NotFoundError.
	GetByID(ctx context.Context, id int64) (Book, error)
	// List returns all books in primary-key order.
	List(ctx context.Context) ([]Book, error)
	// ExistsByID reports whether a book with the given id is persisted.
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID removes the book with the given id, reporting
	// NotFoundError if no row was deleted.
	DeleteByID(ctx context.Context, id int64) error
	// DeleteAll removes every book. Test support.
	DeleteAll(ctx context.Context) error
}
