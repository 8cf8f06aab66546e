package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// postgresRepository - Raw SQL over a pool or a transaction
type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

const selectBookWithAuthor = `
	SELECT b.id, b.title, b.cover_text, b.publication_year, b.comment,
	       b.created_at, b.updated_at,
	       a.id, a.first_name, a.last_name
	FROM books b
	JOIN authors a ON a.id = b.author_id
`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.CoverText, &b.PublicationYear, &b.Comment,
		&b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.FirstName, &b.Author.LastName,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) FindAllWithPagination(ctx context.Context, offset, limit int) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, selectBookWithAuthor+` ORDER BY b.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, limit)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := scanBook(r.db.QueryRow(ctx, selectBookWithAuthor+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindAuthor(ctx context.Context, id int64) (*model.AuthorRef, error) {
	var a model.AuthorRef
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name FROM authors WHERE id = $1`, id,
	).Scan(&a.ID, &a.FirstName, &a.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (title, cover_text, publication_year, comment, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.CoverText, b.PublicationYear, b.Comment, b.Author.ID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return translateWriteError("insert", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET title = $1, cover_text = $2, publication_year = $3, comment = $4,
		    author_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.CoverText, b.PublicationYear, b.Comment, b.Author.ID, b.ID,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrBookNotFound
	}
	if err != nil {
		return translateWriteError("update", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// translateWriteError maps a dangling author_id (author deleted between
// resolution and write) to model.ErrAuthorNotFound.
func translateWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return model.ErrAuthorNotFound
	}
	return fmt.Errorf("failed to %s book: %w", op, err)
}
