package model

import (
	"errors"
	"net/http"

	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorHasBooks = errors.New("author still has books")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound, "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorHasBooks):
		return http.StatusConflict, "AUTHOR_HAS_BOOKS"
	case errors.Is(err, shared.ErrMalformedBody):
		return http.StatusBadRequest, "BAD_REQUEST"
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}

// HandleAuthorError writes the response for err; false when err is nil.
func HandleAuthorError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var ve *shared.ValidationError
	if errors.As(err, &ve) {
		response.ValidationFailed(c, ve.Violations)
		return true
	}

	status, code := ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", c.GetString(shared.ContextRequestID)).
			Msg("[Handler] Unhandled author error")
		response.InternalServerError(c, "Internal server error")
		return true
	}

	response.ErrorResponse(c, status, code, err.Error())
	return true
}
