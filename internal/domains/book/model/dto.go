package model

// ========================================
// REQUEST DTOs
// ========================================

// BookPayload is the body of POST/PUT /api/books. A nil field was absent
// from the request (or null) and is left untouched by ApplyTo.
type BookPayload struct {
	Title           *string `json:"title"`
	CoverText       *string `json:"coverText"`
	PublicationYear *int    `json:"publicationYear"`
	Comment         *string `json:"comment"`
	IDAuthor        *int64  `json:"idAuthor"`
}

// ApplyTo merges the present scalar fields into b. The author is resolved
// separately by the command service.
func (p BookPayload) ApplyTo(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.CoverText != nil {
		b.CoverText = p.CoverText
	}
	if p.PublicationYear != nil {
		b.PublicationYear = p.PublicationYear
	}
	if p.Comment != nil {
		b.Comment = p.Comment
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

// BookSummary is the "list" field group.
type BookSummary struct {
	ID     int64     `json:"id"`
	Title  string    `json:"title"`
	Author AuthorRef `json:"author"`
}

// BookDetail is the "detail" field group.
type BookDetail struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	CoverText       *string   `json:"coverText"`
	PublicationYear *int      `json:"publicationYear"`
	Author          AuthorRef `json:"author"`
}

func ToSummary(b Book) BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, Author: b.Author}
}

func ToSummaries(books []Book) []BookSummary {
	out := make([]BookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, ToSummary(b))
	}
	return out
}

func ToDetail(b Book) BookDetail {
	return BookDetail{
		ID:              b.ID,
		Title:           b.Title,
		CoverText:       b.CoverText,
		PublicationYear: b.PublicationYear,
		Author:          b.Author,
	}
}
