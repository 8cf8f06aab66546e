package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) FindAllWithPagination(ctx context.Context, offset, limit int) ([]model.Author, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM authors
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Author, error) {
		var a model.Author
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	var a model.Author
	err := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM authors
		WHERE id = $1
	`, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) ListBooks(ctx context.Context, authorID int64) ([]model.BookRef, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title FROM books WHERE author_id = $1 ORDER BY id`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}

	books, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.BookRef])
	if err != nil {
		return nil, fmt.Errorf("failed to scan author books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, authorID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count author books: %w", err)
	}
	return count, nil
}

// ════════════════════════════════════════════════════════════════
// WRITE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO authors (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, a.FirstName, a.LastName).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	err := r.db.QueryRow(ctx, `
		UPDATE authors
		SET first_name = $1, last_name = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, a.FirstName, a.LastName, a.ID).Scan(&a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrAuthorNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}
