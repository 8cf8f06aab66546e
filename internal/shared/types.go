package shared

import "errors"

// ErrMalformedBody is returned when a request body is not a JSON object.
var ErrMalformedBody = errors.New("malformed JSON body")

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminDeniedMessage is returned with 403 on admin-only endpoints.
const AdminDeniedMessage = "You are not the admin, sorry"

// Keys set on the gin context by middleware.
const (
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextRequestID = "request_id"
)

// Cache tags. Every list entry is stored under the tag of its collection so
// writes can drop all pages at once.
const (
	BooksCacheTag   = "booksCache"
	AuthorsCacheTag = "authorsCache"
)

// Pagination defaults for list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 3
	MaxLimit     = 100
)
