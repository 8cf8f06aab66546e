package model

import (
	"time"

	"catalog-backend/internal/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTitleLength     = 255
	maxCoverTextLength = 2000
	maxCommentLength   = 1000
)

// Validate checks the merged book before it is persisted. Property names in
// the returned *shared.ValidationError follow the JSON field names.
func (b *Book) Validate() error {
	err := validation.ValidateStruct(b,
		validation.Field(&b.Title,
			validation.Required,
			validation.RuneLength(1, maxTitleLength),
		),
		validation.Field(&b.CoverText, validation.RuneLength(0, maxCoverTextLength)),
		validation.Field(&b.PublicationYear,
			validation.NilOrNotEmpty.Error("must be no less than 1"),
			validation.Min(1),
			validation.Max(time.Now().Year()+1),
		),
		validation.Field(&b.Comment, validation.RuneLength(0, maxCommentLength)),
	)
	return shared.NewValidationError(err)
}

// AuthorViolation is reported when idAuthor does not resolve.
func AuthorViolation() *shared.ValidationError {
	return shared.Violations(shared.Violation{Property: "author", Message: "author not found"})
}

// MissingAuthorViolation is reported when a new book has no idAuthor.
func MissingAuthorViolation() *shared.ValidationError {
	return shared.Violations(shared.Violation{Property: "author", Message: "cannot be blank"})
}
