// Package testutil provides in-memory repositories and token helpers for
// HTTP-level tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	authorModel "catalog-backend/internal/domains/author/model"
	authorRepository "catalog-backend/internal/domains/author/repository"
	bookModel "catalog-backend/internal/domains/book/model"
	bookRepository "catalog-backend/internal/domains/book/repository"
	userModel "catalog-backend/internal/domains/user/model"
	userRepository "catalog-backend/internal/domains/user/repository"

	"golang.org/x/crypto/bcrypt"
)

// Catalog is an in-memory store backing the book, author and user
// repositories. It enforces the same referential rules as the schema.
type Catalog struct {
	mu      sync.Mutex
	authors map[int64]authorModel.Author
	books   map[int64]bookModel.Book
	users   map[string]userModel.User

	nextAuthorID int64
	nextBookID   int64
	nextUserID   int64

	bookListCalls atomic.Int64
}

func NewCatalog() *Catalog {
	return &Catalog{
		authors: make(map[int64]authorModel.Author),
		books:   make(map[int64]bookModel.Book),
		users:   make(map[string]userModel.User),
	}
}

func (c *Catalog) Books() bookRepository.RepositoryInterface     { return &bookRepo{c} }
func (c *Catalog) Authors() authorRepository.RepositoryInterface { return &authorRepo{c} }
func (c *Catalog) Users() userRepository.Repository              { return &userRepo{c} }

// BookListCalls counts FindAllWithPagination calls, i.e. list cache misses.
func (c *Catalog) BookListCalls() int64 { return c.bookListCalls.Load() }

func (c *Catalog) BookCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.books)
}

// ========================================
// SEEDING
// ========================================

func (c *Catalog) AddAuthor(firstName, lastName string) authorModel.Author {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextAuthorID++
	now := time.Now()
	a := authorModel.Author{ID: c.nextAuthorID, FirstName: firstName, LastName: lastName, CreatedAt: now, UpdatedAt: now}
	c.authors[a.ID] = a
	return a
}

func (c *Catalog) AddBook(title string, authorID int64) bookModel.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextBookID++
	now := time.Now()
	b := bookModel.Book{ID: c.nextBookID, Title: title, Author: bookModel.AuthorRef{ID: authorID}, CreatedAt: now, UpdatedAt: now}
	c.books[b.ID] = b
	return c.withAuthor(b)
}

// AddUser stores a user with a bcrypt hash of password.
func (c *Catalog) AddUser(t testing.TB, email, password, role string) userModel.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	u := userModel.User{Email: email, PasswordHash: string(hash), Role: role}
	if err := c.Users().Create(context.Background(), &u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// Book returns the stored book with its author joined.
func (c *Catalog) Book(id int64) (bookModel.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.books[id]
	if !ok {
		return bookModel.Book{}, false
	}
	return c.withAuthor(b), true
}

func (c *Catalog) withAuthor(b bookModel.Book) bookModel.Book {
	a := c.authors[b.Author.ID]
	b.Author = bookModel.AuthorRef{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
	return b
}

func (c *Catalog) sortedBookIDs() []int64 {
	ids := make([]int64, 0, len(c.books))
	for id := range c.books {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// ========================================
// BOOK REPOSITORY
// ========================================

type bookRepo struct{ c *Catalog }

func (r *bookRepo) FindAllWithPagination(_ context.Context, offset, limit int) ([]bookModel.Book, error) {
	r.c.bookListCalls.Add(1)

	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	all := make([]bookModel.Book, 0, len(r.c.books))
	for _, id := range r.c.sortedBookIDs() {
		all = append(all, r.c.withAuthor(r.c.books[id]))
	}
	return page(all, offset, limit), nil
}

func (r *bookRepo) GetByID(_ context.Context, id int64) (*bookModel.Book, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	b, ok := r.c.books[id]
	if !ok {
		return nil, bookModel.ErrBookNotFound
	}
	b = r.c.withAuthor(b)
	return &b, nil
}

func (r *bookRepo) FindAuthor(_ context.Context, id int64) (*bookModel.AuthorRef, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	a, ok := r.c.authors[id]
	if !ok {
		return nil, bookModel.ErrAuthorNotFound
	}
	return &bookModel.AuthorRef{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}, nil
}

func (r *bookRepo) Create(_ context.Context, b *bookModel.Book) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.authors[b.Author.ID]; !ok {
		return bookModel.ErrAuthorNotFound
	}

	r.c.nextBookID++
	b.ID = r.c.nextBookID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.c.books[b.ID] = *b
	return nil
}

func (r *bookRepo) Update(_ context.Context, b *bookModel.Book) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.books[b.ID]; !ok {
		return bookModel.ErrBookNotFound
	}
	if _, ok := r.c.authors[b.Author.ID]; !ok {
		return bookModel.ErrAuthorNotFound
	}

	b.UpdatedAt = time.Now()
	r.c.books[b.ID] = *b
	return nil
}

func (r *bookRepo) Delete(_ context.Context, id int64) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.books[id]; !ok {
		return bookModel.ErrBookNotFound
	}
	delete(r.c.books, id)
	return nil
}

// ========================================
// AUTHOR REPOSITORY
// ========================================

type authorRepo struct{ c *Catalog }

func (r *authorRepo) FindAllWithPagination(_ context.Context, offset, limit int) ([]authorModel.Author, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	all := make([]authorModel.Author, 0, len(r.c.authors))
	for _, a := range r.c.authors {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, offset, limit), nil
}

func (r *authorRepo) GetByID(_ context.Context, id int64) (*authorModel.Author, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	a, ok := r.c.authors[id]
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *authorRepo) ListBooks(_ context.Context, authorID int64) ([]authorModel.BookRef, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	var refs []authorModel.BookRef
	for _, id := range r.c.sortedBookIDs() {
		if b := r.c.books[id]; b.Author.ID == authorID {
			refs = append(refs, authorModel.BookRef{ID: b.ID, Title: b.Title})
		}
	}
	return refs, nil
}

func (r *authorRepo) CountBooks(ctx context.Context, authorID int64) (int, error) {
	refs, err := r.ListBooks(ctx, authorID)
	return len(refs), err
}

func (r *authorRepo) Create(_ context.Context, a *authorModel.Author) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.nextAuthorID++
	a.ID = r.c.nextAuthorID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.c.authors[a.ID] = *a
	return nil
}

func (r *authorRepo) Update(_ context.Context, a *authorModel.Author) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.authors[a.ID]; !ok {
		return authorModel.ErrAuthorNotFound
	}
	a.UpdatedAt = time.Now()
	r.c.authors[a.ID] = *a
	return nil
}

func (r *authorRepo) Delete(_ context.Context, id int64) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.authors[id]; !ok {
		return authorModel.ErrAuthorNotFound
	}
	for _, b := range r.c.books {
		if b.Author.ID == id {
			return authorModel.ErrAuthorHasBooks
		}
	}
	delete(r.c.authors, id)
	return nil
}

// ========================================
// USER REPOSITORY
// ========================================

type userRepo struct{ c *Catalog }

func (r *userRepo) FindByEmail(_ context.Context, email string) (*userModel.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	u, ok := r.c.users[strings.ToLower(email)]
	if !ok {
		return nil, userModel.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepo) Create(_ context.Context, u *userModel.User) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := r.c.users[key]; exists {
		return userModel.ErrEmailAlreadyExists
	}

	r.c.nextUserID++
	u.ID = r.c.nextUserID
	u.Email = key
	u.CreatedAt = time.Now()
	r.c.users[key] = *u
	return nil
}
