package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/shared"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/logger"
)

type commandService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewCommandService(repo repository.RepositoryInterface, c cache.Cache) CommandService {
	return &commandService{repo: repo, cache: c}
}

// CREATE BOOK
func (s *commandService) CreateBook(ctx context.Context, payload model.BookPayload) (*model.BookDetail, error) {
	book := &model.Book{}
	payload.ApplyTo(book)

	// 1. Resolve author; a missing idAuthor is a violation on "author"
	var authorErr error
	if payload.IDAuthor == nil {
		authorErr = model.MissingAuthorViolation()
	} else {
		authorErr = s.resolveAuthor(ctx, book, *payload.IDAuthor)
	}

	// 2. Validate; every violation is reported at once
	if err := shared.Merge(authorErr, book.Validate()); err != nil {
		return nil, err
	}

	// 3. Persist
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, s.writeError(err)
	}

	// 4. Invalidate list cache
	s.invalidate(ctx, "create", book.ID)

	detail := model.ToDetail(*book)
	return &detail, nil
}

// UPDATE BOOK
func (s *commandService) UpdateBook(ctx context.Context, id int64, payload model.BookPayload) error {
	// 1. Get existing book
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// 2. Merge present fields; author changes only with idAuthor
	payload.ApplyTo(book)

	var authorErr error
	if payload.IDAuthor != nil && *payload.IDAuthor != book.Author.ID {
		authorErr = s.resolveAuthor(ctx, book, *payload.IDAuthor)
	}

	// 3. Validate
	if err := shared.Merge(authorErr, book.Validate()); err != nil {
		return err
	}

	// 4. Save changes
	if err := s.repo.Update(ctx, book); err != nil {
		return s.writeError(err)
	}

	// 5. Invalidate list cache
	s.invalidate(ctx, "update", id)
	return nil
}

// DELETE
// Invalidation runs before the delete; if it fails nothing is deleted.
func (s *commandService) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.cache.InvalidateTags(ctx, shared.BooksCacheTag); err != nil {
		return fmt.Errorf("failed to invalidate book cache: %w", err)
	}

	return s.repo.Delete(ctx, id)
}

// resolveAuthor sets book.Author or returns the "author" violation.
func (s *commandService) resolveAuthor(ctx context.Context, book *model.Book, authorID int64) error {
	author, err := s.repo.FindAuthor(ctx, authorID)
	if errors.Is(err, model.ErrAuthorNotFound) {
		return model.AuthorViolation()
	}
	if err != nil {
		return err
	}

	book.Author = *author
	return nil
}

func (s *commandService) writeError(err error) error {
	if errors.Is(err, model.ErrAuthorNotFound) {
		return model.AuthorViolation()
	}
	return err
}

// invalidate drops every cached list page. Failures are only logged; stale
// pages then expire with their TTL.
func (s *commandService) invalidate(ctx context.Context, op string, id int64) {
	if err := s.cache.InvalidateTags(ctx, shared.BooksCacheTag); err != nil {
		logger.Error(fmt.Sprintf("[Service] Failed to invalidate book list cache after %s of book %d", op, id), err)
	}
}
