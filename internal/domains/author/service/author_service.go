package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/logger"
)

// ServiceInterface - author business logic
type ServiceInterface interface {
	ListAuthors(ctx context.Context, page, limit int) ([]byte, error)
	GetAuthor(ctx context.Context, id int64) (*model.AuthorDetail, error)
	CreateAuthor(ctx context.Context, payload model.AuthorPayload) (*model.AuthorSummary, error)
	UpdateAuthor(ctx context.Context, id int64, payload model.AuthorPayload) error
	DeleteAuthor(ctx context.Context, id int64) error
}

// Book lists embed author names, so author writes drop both tags.
var invalidatedTags = []string{shared.AuthorsCacheTag, shared.BooksCacheTag}

type authorService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewAuthorService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &authorService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func (s *authorService) ListAuthors(ctx context.Context, page, limit int) ([]byte, error) {
	page, limit = utils.NormalizePagination(page, limit)

	return cache.GetOrCompute(ctx, s.cache, model.ListCacheKey(page, limit), s.cacheTTL,
		[]string{shared.AuthorsCacheTag},
		func(ctx context.Context) ([]byte, error) {
			authors, err := s.repo.FindAllWithPagination(ctx, utils.Offset(page, limit), limit)
			if err != nil {
				return nil, err
			}
			return json.Marshal(model.ToSummaries(authors))
		})
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (*model.AuthorDetail, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := author.ToDetail(books)
	return &detail, nil
}

func (s *authorService) CreateAuthor(ctx context.Context, payload model.AuthorPayload) (*model.AuthorSummary, error) {
	author := &model.Author{}
	payload.ApplyTo(author)

	if err := author.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}

	s.invalidate(ctx, "create", author.ID)

	summary := author.ToSummary()
	return &summary, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, payload model.AuthorPayload) error {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	payload.ApplyTo(author)
	if err := author.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, author); err != nil {
		return err
	}

	s.invalidate(ctx, "update", id)
	return nil
}

// DeleteAuthor refuses while books reference the author. As with books,
// invalidation runs first and a failure aborts the delete.
func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return model.ErrAuthorHasBooks
	}

	if err := s.cache.InvalidateTags(ctx, invalidatedTags...); err != nil {
		return fmt.Errorf("failed to invalidate author cache: %w", err)
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorService) invalidate(ctx context.Context, op string, id int64) {
	if err := s.cache.InvalidateTags(ctx, invalidatedTags...); err != nil {
		logger.Error(fmt.Sprintf("[Service] Failed to invalidate caches after %s of author %d", op, id), err)
	}
}
