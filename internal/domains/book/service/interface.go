package service

import (
	"context"

	"catalog-backend/internal/domains/book/model"
)

// QueryService - read side of the catalog
type QueryService interface {
	// ListBooks returns one page of the "list" group serialized as JSON,
	// served from cache while the booksCache tag is live.
	ListBooks(ctx context.Context, page, limit int) ([]byte, error)
	GetBook(ctx context.Context, id int64) (*model.BookDetail, error)
}

// CommandService - admin mutations; each one invalidates booksCache
type CommandService interface {
	CreateBook(ctx context.Context, payload model.BookPayload) (*model.BookDetail, error)
	UpdateBook(ctx context.Context, id int64, payload model.BookPayload) error
	DeleteBook(ctx context.Context, id int64) error
}
