package handler

import (
	"net/http"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

// Handler - HTTP Handler for /api/books
type Handler struct {
	query   service.QueryService
	command service.CommandService
}

func NewHandler(query service.QueryService, command service.CommandService) *Handler {
	return &Handler{query: query, command: command}
}

// RegisterRoutes mounts the book endpoints; adminOnly guards mutations.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	books := rg.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.POST("", adminOnly, h.CreateBook)
		books.PUT("/:id", adminOnly, h.UpdateBook)
		books.DELETE("/:id", adminOnly, h.DeleteBook)
	}
}

// ListBooks - GET /api/books?page=&limit=
// The cached bytes are written verbatim.
func (h *Handler) ListBooks(c *gin.Context) {
	page, limit := utils.Pagination(c)

	data, err := h.query.ListBooks(c.Request.Context(), page, limit)
	if model.HandleBookError(c, err) {
		return
	}

	response.RawJSON(c, http.StatusOK, data)
}

// GetBook - GET /api/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		model.HandleBookError(c, model.ErrBookNotFound)
		return
	}

	detail, err := h.query.GetBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

// CreateBook - POST /api/books (admin)
func (h *Handler) CreateBook(c *gin.Context) {
	var payload model.BookPayload
	if err := utils.BindJSON(c, &payload); err != nil {
		model.HandleBookError(c, err)
		return
	}

	detail, err := h.command.CreateBook(c.Request.Context(), payload)
	if model.HandleBookError(c, err) {
		return
	}

	response.Created(c, model.Location(detail.ID), detail)
}

// UpdateBook - PUT /api/books/:id (admin)
// Absent fields keep their current value.
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		model.HandleBookError(c, model.ErrBookNotFound)
		return
	}

	var payload model.BookPayload
	if err := utils.BindJSON(c, &payload); err != nil {
		model.HandleBookError(c, err)
		return
	}

	if model.HandleBookError(c, h.command.UpdateBook(c.Request.Context(), id, payload)) {
		return
	}

	response.NoContent(c)
}

// DeleteBook - DELETE /api/books/:id (admin)
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		model.HandleBookError(c, model.ErrBookNotFound)
		return
	}

	if model.HandleBookError(c, h.command.DeleteBook(c.Request.Context(), id)) {
		return
	}

	response.NoContent(c)
}
