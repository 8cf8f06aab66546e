package main

import (
	"context"
	"errors"
	"fmt"

	authorModel "catalog-backend/internal/domains/author/model"
	authorRepository "catalog-backend/internal/domains/author/repository"
	bookModel "catalog-backend/internal/domains/book/model"
	bookRepository "catalog-backend/internal/domains/book/repository"
	userModel "catalog-backend/internal/domains/user/model"
	userRepository "catalog-backend/internal/domains/user/repository"
	pkgdb "catalog-backend/pkg/database"
)

type repos struct {
	authors authorRepository.RepositoryInterface
	books   bookRepository.RepositoryInterface
	users   userRepository.Repository
}

func newRepos(db pkgdb.DBTX) repos {
	return repos{
		authors: authorRepository.NewPostgresRepository(db),
		books:   bookRepository.NewPostgresRepository(db),
		users:   userRepository.NewPostgresRepository(db),
	}
}

// summary counts the rows a seed run created.
type summary struct {
	Authors int
	Books   int
	Users   int
	// CatalogSkipped is set when authors already existed.
	CatalogSkipped bool
}

// seed fills an empty catalog and creates the missing seed users. hashes
// maps each seed email to its password hash.
func seed(ctx context.Context, r repos, hashes map[string]string) (summary, error) {
	var sum summary

	existing, err := r.authors.FindAllWithPagination(ctx, 0, 1)
	if err != nil {
		return sum, fmt.Errorf("check authors: %w", err)
	}

	if len(existing) > 0 {
		sum.CatalogSkipped = true
	} else {
		if sum.Authors, sum.Books, err = seedCatalog(ctx, r); err != nil {
			return sum, err
		}
	}

	if sum.Users, err = seedUsers(ctx, r.users, hashes); err != nil {
		return sum, err
	}
	return sum, nil
}

func seedCatalog(ctx context.Context, r repos) (authors, books int, err error) {
	authorIDs := make([]int64, 0, seedAuthorCount)
	for i := 1; i <= seedAuthorCount; i++ {
		a := &authorModel.Author{
			FirstName: fmt.Sprintf("Firstname %d", i),
			LastName:  fmt.Sprintf("Lastname %d", i),
		}
		if err := r.authors.Create(ctx, a); err != nil {
			return 0, 0, fmt.Errorf("insert author %d: %w", i, err)
		}
		authorIDs = append(authorIDs, a.ID)
	}

	for i := 0; i < seedBookCount; i++ {
		cover := fmt.Sprintf("Cover text of book %d", i+1)
		year := 1950 + i*3
		b := &bookModel.Book{
			Title:           fmt.Sprintf("Book title %d", i+1),
			CoverText:       &cover,
			PublicationYear: &year,
			Author:          bookModel.AuthorRef{ID: authorIDs[i%len(authorIDs)]},
		}
		if err := r.books.Create(ctx, b); err != nil {
			return 0, 0, fmt.Errorf("insert book %d: %w", i+1, err)
		}
	}

	return len(authorIDs), seedBookCount, nil
}

func seedUsers(ctx context.Context, users userRepository.Repository, hashes map[string]string) (int, error) {
	created := 0
	for _, su := range seedAccounts {
		_, err := users.FindByEmail(ctx, su.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, userModel.ErrUserNotFound) {
			return created, fmt.Errorf("find user %s: %w", su.email, err)
		}

		u := &userModel.User{Email: su.email, PasswordHash: hashes[su.email], Role: su.role}
		if err := users.Create(ctx, u); err != nil {
			return created, fmt.Errorf("insert user %s: %w", su.email, err)
		}
		created++
	}
	return created, nil
}
