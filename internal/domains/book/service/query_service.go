package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/cache"
)

type queryService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewQueryService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) QueryService {
	return &queryService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func (s *queryService) ListBooks(ctx context.Context, page, limit int) ([]byte, error) {
	page, limit = utils.NormalizePagination(page, limit)

	return cache.GetOrCompute(ctx, s.cache, model.ListCacheKey(page, limit), s.cacheTTL,
		[]string{shared.BooksCacheTag},
		func(ctx context.Context) ([]byte, error) {
			books, err := s.repo.FindAllWithPagination(ctx, utils.Offset(page, limit), limit)
			if err != nil {
				return nil, err
			}

			data, err := json.Marshal(model.ToSummaries(books))
			if err != nil {
				return nil, fmt.Errorf("failed to encode book list: %w", err)
			}
			return data, nil
		})
}

func (s *queryService) GetBook(ctx context.Context, id int64) (*model.BookDetail, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := model.ToDetail(*book)
	return &detail, nil
}
