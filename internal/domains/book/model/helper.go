package model

import "fmt"

// ListCacheKey is the cache key of one page of the book list.
func ListCacheKey(page, limit int) string {
	return fmt.Sprintf("getAllBooks-%d-%d", page, limit)
}

// Location is the URL of a created book.
func Location(id int64) string {
	return fmt.Sprintf("/api/books/%d", id)
}
