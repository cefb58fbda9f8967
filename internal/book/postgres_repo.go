package book

// Repository implementation (Postgres).

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// now returns the current time at the precision Postgres stores, so a
// saved entity compares equal to what a later read returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (r *PostgresRepo) Save(ctx context.Context, b *Book) error {
	if b.ID == 0 {
		ts := now()
		const query = `
		INSERT INTO books (title, description, author, isbn, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
		`
		if err := r.db.QueryRow(ctx, query, b.Title, b.Description, b.Author, b.ISBN, ts).Scan(&b.ID); err != nil {
			return err
		}
		b.CreatedAt = ts
		b.UpdatedAt = ts
		return nil
	}

	ts := now()
	const query = `
	UPDATE books
	SET title = $2, description = $3, author = $4, isbn = $5, updated_at = $6
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, b.ID, b.Title, b.Description, b.Author, b.ISBN, ts)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return NotFoundError{ID: b.ID}
	}
	b.UpdatedAt = ts
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
	SELECT id, title, description, author, isbn, created_at, updated_at
	FROM books
	WHERE id = $1
	`
	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, NotFoundError{ID: id}
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
	SELECT id, title, description, author, isbn, created_at, updated_at
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return NotFoundError{ID: id}
	}
	return nil
}

func (r *PostgresRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books`)
	return err
}
