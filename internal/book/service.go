package book

import (
	"context"
	"log"
)

// Service provides the book use cases. It holds no state of its own;
// every call goes straight through the repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new book from dto. The incoming identifier and
// timestamps are ignored; the store assigns them.
func (s *Service) Create(ctx context.Context, dto BookDTO) (BookDTO, error) {
	log.Printf("service create book: title=%q isbn=%q", dto.Title, dto.ISBN)
	b := ToEntity(&dto)
	b.Record = Record{}
	if err := s.repo.Save(ctx, &b); err != nil {
		return BookDTO{}, err
	}
	log.Printf("service create book done: id=%d", b.ID)
	return ToDTO(&b), nil
}

// GetByID returns the book with the given id.
func (s *Service) GetByID(ctx context.Context, id int64) (BookDTO, error) {
	log.Printf("service get book: id=%d", id)
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return BookDTO{}, err
	}
	log.Printf("service get book done: id=%d", b.ID)
	return ToDTO(&b), nil
}

// Update overwrites the four mutable fields of the book with the given
// id from dto and persists it. Identifier and CreatedAt are preserved;
// UpdatedAt refreshes. Partial updates are not supported.
func (s *Service) Update(ctx context.Context, id int64, dto BookDTO) (BookDTO, error) {
	log.Printf("service update book: id=%d", id)
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return BookDTO{}, err
	}
	b.Title = dto.Title
	b.Description = dto.Description
	b.Author = dto.Author
	b.ISBN = dto.ISBN
	if err := s.repo.Save(ctx, &b); err != nil {
		return BookDTO{}, err
	}
	log.Printf("service update book done: id=%d", b.ID)
	return ToDTO(&b), nil
}

// List returns all books in store order.
func (s *Service) List(ctx context.Context) ([]BookDTO, error) {
	log.Printf("service list books")
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("service list books done: count=%d", len(books))
	return ToDTOList(books), nil
}

// DeleteByID removes the book with the given id. A missing id is
// reported as NotFoundError, never as a silent no-op. The delete itself
// re-checks affected rows, so a concurrent delete still reports
// NotFoundError rather than succeeding.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	log.Printf("service delete book: id=%d", id)
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("service delete book: id=%d not found", id)
		return NotFoundError{ID: id}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	log.Printf("service delete book done: id=%d", id)
	return nil
}
