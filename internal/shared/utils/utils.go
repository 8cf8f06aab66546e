package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"catalog-backend/internal/shared"

	"github.com/gin-gonic/gin"
)

// ParseID reads a positive int64 path parameter. ok is false for anything
// that cannot identify a row.
func ParseID(c *gin.Context, param string) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryInt coerces a query parameter to an int, falling back to def when it
// is absent, unparsable or below 1.
func QueryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// Pagination reads page and limit with the list defaults, capping limit.
func Pagination(c *gin.Context) (page, limit int) {
	return NormalizePagination(
		QueryInt(c, "page", shared.DefaultPage),
		QueryInt(c, "limit", shared.DefaultLimit),
	)
}

// NormalizePagination applies list defaults and the limit cap. page is
// clamped so that Offset(page, limit) cannot overflow; a clamped page is
// still past the last row and lists as empty.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = shared.DefaultPage
	}
	if limit < 1 {
		limit = shared.DefaultLimit
	}
	if limit > shared.MaxLimit {
		limit = shared.MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}

// Offset converts a 1-based page into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// MaxBodyBytes caps request bodies read by BindJSON.
const MaxBodyBytes = 1 << 20

// BindJSON decodes a single JSON value from the request body into dst. A
// value of the wrong JSON type becomes a *shared.ValidationError on that
// property; an oversized body, trailing data or anything else that fails to
// decode wraps shared.ErrMalformedBody.
func BindJSON(c *gin.Context, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return shared.Violations(shared.Violation{
				Property: typeErr.Field,
				Message:  "must be of type " + typeErr.Type.String(),
			})
		}
		return fmt.Errorf("%w: %v", shared.ErrMalformedBody, err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", shared.ErrMalformedBody)
	}
	return nil
}
