package model

import "time"

// Book is the persisted catalog entry. Comment and the timestamps are
// internal and never leave the service.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	CoverText       *string   `json:"coverText"`
	PublicationYear *int      `json:"publicationYear"`
	Comment         *string   `json:"comment"`
	Author          AuthorRef `json:"author"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// AuthorRef is the author as embedded in book responses.
type AuthorRef struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
