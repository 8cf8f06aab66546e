package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"catalog-backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func properties(t *testing.T, err error) []string {
	t.Helper()
	var ve *shared.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)

	props := make([]string, len(ve.Violations))
	for i, v := range ve.Violations {
		props[i] = v.Property
	}
	return props
}

func TestBook_Validate(t *testing.T) {
	nextYear := time.Now().Year() + 1

	tests := []struct {
		name      string
		book      Book
		wantProps []string
	}{
		{
			name: "minimal valid",
			book: Book{Title: "Dune"},
		},
		{
			name: "fully populated",
			book: Book{Title: "Dune", CoverText: strPtr("Spice"), PublicationYear: intPtr(1965), Comment: strPtr("classic")},
		},
		{
			name: "next year is allowed",
			book: Book{Title: "Upcoming", PublicationYear: intPtr(nextYear)},
		},
		{
			name:      "blank title",
			book:      Book{Title: ""},
			wantProps: []string{"title"},
		},
		{
			name:      "title too long",
			book:      Book{Title: strings.Repeat("a", 256)},
			wantProps: []string{"title"},
		},
		{
			name:      "year zero",
			book:      Book{Title: "x", PublicationYear: intPtr(0)},
			wantProps: []string{"publicationYear"},
		},
		{
			name:      "year in the future",
			book:      Book{Title: "x", PublicationYear: intPtr(nextYear + 1)},
			wantProps: []string{"publicationYear"},
		},
		{
			name:      "several violations sorted",
			book:      Book{Title: "", CoverText: strPtr(strings.Repeat("c", 2001)), Comment: strPtr(strings.Repeat("c", 1001))},
			wantProps: []string{"comment", "coverText", "title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if tt.wantProps == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantProps, properties(t, err))
		})
	}
}

func TestBookPayload_ApplyTo_KeepsAbsentFields(t *testing.T) {
	book := Book{
		ID:              1,
		Title:           "Old",
		CoverText:       strPtr("cover"),
		PublicationYear: intPtr(1999),
		Comment:         strPtr("note"),
		Author:          AuthorRef{ID: 3, FirstName: "Ann", LastName: "Lee"},
	}

	BookPayload{Title: strPtr("New")}.ApplyTo(&book)

	assert.Equal(t, "New", book.Title)
	assert.Equal(t, "cover", *book.CoverText)
	assert.Equal(t, 1999, *book.PublicationYear)
	assert.Equal(t, "note", *book.Comment)
	assert.Equal(t, int64(3), book.Author.ID)
}

func TestFieldGroups(t *testing.T) {
	book := Book{ID: 5, Title: "T", CoverText: strPtr("c"), PublicationYear: intPtr(2000), Comment: strPtr("secret"),
		Author: AuthorRef{ID: 2, FirstName: "A", LastName: "B"}}

	assert.Equal(t, BookSummary{ID: 5, Title: "T", Author: book.Author}, ToSummary(book))

	detail := ToDetail(book)
	assert.Equal(t, "c", *detail.CoverText)
	assert.Equal(t, 2000, *detail.PublicationYear)

	assert.Empty(t, ToSummaries(nil))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "getAllBooks-2-10", ListCacheKey(2, 10))
	assert.Equal(t, "/api/books/9", Location(9))
}
