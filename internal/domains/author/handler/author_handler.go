package handler

import (
	"net/http"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/service"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// ROUTES REGISTRATION
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	authors := rg.Group("/authors")
	{
		authors.GET("", h.GetAll)
		authors.GET("/:id", h.GetByID)
		authors.POST("", adminOnly, h.Create)
		authors.PUT("/:id", adminOnly, h.Update)
		authors.DELETE("/:id", adminOnly, h.Delete)
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /api/authors?page=&limit=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	page, limit := utils.Pagination(c)

	data, err := h.service.ListAuthors(c.Request.Context(), page, limit)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.RawJSON(c, http.StatusOK, data)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		model.HandleAuthorError(c, model.ErrAuthorNotFound)
		return
	}

	detail, err := h.service.GetAuthor(c.Request.Context(), id)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var payload model.AuthorPayload
	if err := utils.BindJSON(c, &payload); err != nil {
		model.HandleAuthorError(c, err)
		return
	}

	summary, err := h.service.CreateAuthor(c.Request.Context(), payload)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.Created(c, model.Location(summary.ID), summary)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		model.HandleAuthorError(c, model.ErrAuthorNotFound)
		return
	}

	var payload model.AuthorPayload
	if err := utils.BindJSON(c, &payload); err != nil {
		model.HandleAuthorError(c, err)
		return
	}

	if model.HandleAuthorError(c, h.service.UpdateAuthor(c.Request.Context(), id, payload)) {
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		model.HandleAuthorError(c, model.ErrAuthorNotFound)
		return
	}

	if model.HandleAuthorError(c, h.service.DeleteAuthor(c.Request.Context(), id)) {
		return
	}

	response.NoContent(c)
}
