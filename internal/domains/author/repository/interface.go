package repository

import (
	"context"

	"catalog-backend/internal/domains/author/model"
)

type RepositoryInterface interface {
	FindAllWithPagination(ctx context.Context, offset, limit int) ([]model.Author, error)
	// GetByID returns model.ErrAuthorNotFound when the id does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	// ListBooks returns the author's books ordered by id.
	ListBooks(ctx context.Context, authorID int64) ([]model.BookRef, error)
	CountBooks(ctx context.Context, authorID int64) (int, error)
	Create(ctx context.Context, a *model.Author) error
	Update(ctx context.Context, a *model.Author) error
	// Delete returns model.ErrAuthorHasBooks when books still reference the author.
	Delete(ctx context.Context, id int64) error
}
