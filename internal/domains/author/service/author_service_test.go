package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-backend/internal/domains/author/model"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct {
	*infraCache.MemoryCache
}

func (brokenCache) InvalidateTags(context.Context, ...string) error {
	return errors.New("redis: connection refused")
}

func strPtr(s string) *string { return &s }

func TestAuthorWrites_InvalidateBookLists(t *testing.T) {
	ctx := context.Background()
	catalog := testutil.NewCatalog()
	c := infraCache.NewMemoryCache(100, time.Minute)
	require.NoError(t, c.Set(ctx, "getAllBooks-1-3", []byte("[]"), time.Minute, shared.BooksCacheTag))

	svc := NewAuthorService(catalog.Authors(), c, time.Minute)
	_, err := svc.CreateAuthor(ctx, model.AuthorPayload{FirstName: strPtr("Frank"), LastName: strPtr("Herbert")})
	require.NoError(t, err)

	_, found, _ := c.Get(ctx, "getAllBooks-1-3")
	assert.False(t, found)
}

func TestDeleteAuthor_InvalidationFailureKeepsAuthor(t *testing.T) {
	ctx := context.Background()
	catalog := testutil.NewCatalog()
	catalog.AddAuthor("Frank", "Herbert")

	svc := NewAuthorService(catalog.Authors(), brokenCache{infraCache.NewMemoryCache(100, time.Minute)}, time.Minute)

	err := svc.DeleteAuthor(ctx, 1)
	assert.ErrorContains(t, err, "invalidate")

	_, err = catalog.Authors().GetByID(ctx, 1)
	assert.NoError(t, err)
}

func TestUpdateAuthor_InvalidationFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	catalog := testutil.NewCatalog()
	catalog.AddAuthor("Frank", "Herbert")

	svc := NewAuthorService(catalog.Authors(), brokenCache{infraCache.NewMemoryCache(100, time.Minute)}, time.Minute)

	require.NoError(t, svc.UpdateAuthor(ctx, 1, model.AuthorPayload{LastName: strPtr("Zamyatin")}))

	a, err := catalog.Authors().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Zamyatin", a.LastName)
}
