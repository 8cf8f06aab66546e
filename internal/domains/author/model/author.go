package model

import (
	"time"

	"catalog-backend/internal/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Author struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BookRef is a book as listed on its author.
type BookRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (a *Author) Validate() error {
	return shared.NewValidationError(validation.ValidateStruct(a,
		validation.Field(&a.FirstName, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&a.LastName, validation.Required, validation.RuneLength(1, 255)),
	))
}
