package main

import (
	"context"
	"testing"

	userModel "catalog-backend/internal/domains/user/model"
	userRepository "catalog-backend/internal/domains/user/repository"
	"catalog-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRepos(c *testutil.Catalog) repos {
	return repos{authors: c.Authors(), books: c.Books(), users: c.Users()}
}

func testHashes() map[string]string {
	return map[string]string{"admin@bookapi.com": "hash-a", "user@bookapi.com": "hash-u"}
}

func TestSeed_EmptyCatalog(t *testing.T) {
	ctx := context.Background()
	c := testutil.NewCatalog()

	sum, err := seed(ctx, catalogRepos(c), testHashes())
	require.NoError(t, err)

	assert.Equal(t, summary{Authors: seedAuthorCount, Books: seedBookCount, Users: 2}, sum)
	assert.Equal(t, seedBookCount, c.BookCount())

	admin, err := c.Users().FindByEmail(ctx, "admin@bookapi.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, "hash-a", admin.PasswordHash)

	b, ok := c.Book(11)
	require.True(t, ok)
	assert.Equal(t, int64(1), b.Author.ID)
	require.NotNil(t, b.PublicationYear)
	assert.Equal(t, 1980, *b.PublicationYear)
}

func TestSeed_SecondRunOnlyFillsMissingUsers(t *testing.T) {
	ctx := context.Background()
	c := testutil.NewCatalog()
	c.AddAuthor("Ada", "Lovelace")
	c.AddUser(t, "user@bookapi.com", "secret", "user")

	sum, err := seed(ctx, catalogRepos(c), testHashes())
	require.NoError(t, err)

	assert.True(t, sum.CatalogSkipped)
	assert.Zero(t, sum.Books)
	assert.Equal(t, 1, sum.Users)
	assert.Zero(t, c.BookCount())

	sum, err = seed(ctx, catalogRepos(c), testHashes())
	require.NoError(t, err)
	assert.Zero(t, sum.Users)
}

// racingUsers loses the insert to a concurrent writer.
type racingUsers struct {
	userRepository.Repository
}

func (racingUsers) FindByEmail(context.Context, string) (*userModel.User, error) {
	return nil, userModel.ErrUserNotFound
}

func (racingUsers) Create(context.Context, *userModel.User) error {
	return userModel.ErrEmailAlreadyExists
}

func TestSeedUsers_DuplicateEmailFails(t *testing.T) {
	created, err := seedUsers(context.Background(), racingUsers{}, testHashes())

	require.ErrorIs(t, err, userModel.ErrEmailAlreadyExists)
	assert.Zero(t, created)
}
