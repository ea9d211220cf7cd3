package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authorModel "catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/book/model"
	service "catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/shared/paging"
	"catalog-backend/internal/shared/request"
	"catalog-backend/internal/shared/response"
)

// Handler - HTTP handler for book routes
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// Publish - POST /v1/books
// Requires the AUTHOR scope (checked by middleware)
func (h *Handler) Publish(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	isbn, err := h.service.PublishBook(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, model.BookPath(isbn))
}

// GetByIsbn - GET /v1/books/isbn/:isbn
func (h *Handler) GetByIsbn(c *gin.Context) {
	isbn, err := request.Int64Param(c, "isbn")
	if err != nil {
		response.FromError(c, err)
		return
	}

	book, err := h.service.FindByIsbn(c.Request.Context(), isbn)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.HAL(c, http.StatusOK, book.ToResponse())
}

// Authors - GET /v1/books/isbn/:isbn/authors?sortType=
func (h *Handler) Authors(c *gin.Context) {
	isbn, err := request.Int64Param(c, "isbn")
	if err != nil {
		response.FromError(c, err)
		return
	}
	sort, err := authorModel.ParseAuthorSort(c.Query("sortType"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	authors, err := h.service.FindBookAuthors(c.Request.Context(), isbn, sort)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.HAL(c, http.StatusOK, response.NewCollectionModel("authors", authors, response.SelfLink(c), authorModel.AuthorView.ToResponse))
}

// ByTitle - GET /v1/books/title/:title
func (h *Handler) ByTitle(c *gin.Context) {
	page, err := request.Page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	title := strings.TrimSpace(c.Param("title"))

	result, err := h.service.FindByTitle(c.Request.Context(), title, page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.renderPage(c, result)
}

// ByGenre - GET /v1/books/genre/:genre
func (h *Handler) ByGenre(c *gin.Context) {
	page, err := request.Page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.FindByGenre(c.Request.Context(), strings.TrimSpace(c.Param("genre")), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.renderPage(c, result)
}

// List - GET /v1/books?page=&size=
func (h *Handler) List(c *gin.Context) {
	page, err := request.Page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.FindAll(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.renderPage(c, result)
}

func (h *Handler) renderPage(c *gin.Context, result paging.Page[model.Book]) {
	response.HAL(c, http.StatusOK, response.NewPagedModel("books", result, response.SelfLink(c), model.Book.ToResponse))
}
