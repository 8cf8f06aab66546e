package repository

import (
	"context"

	"catalog-backend/internal/domains/book/model"
)

// RepositoryInterface is the persistence port of the book domain.
type RepositoryInterface interface {
	// FindAllWithPagination returns books ordered by id with their author.
	FindAllWithPagination(ctx context.Context, offset, limit int) ([]model.Book, error)
	// GetByID returns model.ErrBookNotFound when the id does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	// FindAuthor returns model.ErrAuthorNotFound when the id does not resolve.
	FindAuthor(ctx context.Context, id int64) (*model.AuthorRef, error)
	// Create inserts b and fills in its ID and timestamps.
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
}
