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
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "BOOK_NOT_FOUND",
		Message: "The specified book does not exist",
	},
	shared.ErrMalformedBody: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Request body must be a JSON object",
	},
}

// HandleBookError writes the HTTP response for err and reports whether it
// did. Validation failures are rendered as a bare violations array.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var ve *shared.ValidationError
	if errors.As(err, &ve) {
		response.ValidationFailed(c, ve.Violations)
		return true
	}

	for target, config := range bookErrorMap {
		if errors.Is(err, target) {
			response.ErrorResponse(c, config.Status, config.Code, config.Message)
			return true
		}
	}

	log.Error().Err(err).
		Str("request_id", c.GetString(shared.ContextRequestID)).
		Str("path", c.Request.URL.Path).
		Msg("[Handler] Unhandled book error")
	response.InternalServerError(c, "Internal server error")
	return true
}
