package model

import "fmt"

// AuthorPayload is the body of POST/PUT /api/authors; nil means absent.
type AuthorPayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (p AuthorPayload) ApplyTo(a *Author) {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
}

type AuthorSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthorDetail struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Books     []BookRef `json:"books"`
}

func (a Author) ToSummary() AuthorSummary {
	return AuthorSummary{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
}

func (a Author) ToDetail(books []BookRef) AuthorDetail {
	if books == nil {
		books = []BookRef{}
	}
	return AuthorDetail{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Books: books}
}

func ToSummaries(authors []Author) []AuthorSummary {
	out := make([]AuthorSummary, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToSummary())
	}
	return out
}

func ListCacheKey(page, limit int) string {
	return fmt.Sprintf("getAllAuthors-%d-%d", page, limit)
}

func Location(id int64) string {
	return fmt.Sprintf("/api/authors/%d", id)
}
