package handler

import (
	"errors"
	"net/http"

	"catalog-backend/internal/domains/user/model"
	"catalog-backend/internal/domains/user/service"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login_check", h.Login)
}

// Login - POST /api/login_check
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	var ve *shared.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ValidationFailed(c, ve.Violations)
	case errors.Is(err, shared.ErrMalformedBody):
		response.BadRequest(c, "Request body must be a JSON object")
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials.")
	default:
		log.Error().Err(err).Str("request_id", c.GetString(shared.ContextRequestID)).Msg("[Handler] Login failed")
		response.InternalServerError(c, "Internal server error")
	}
}
