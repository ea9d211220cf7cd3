package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/service"
	bookModel "catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/request"
	"catalog-backend/internal/shared/response"
)

const maxPatchBytes = 64 << 10

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.service.AddAuthor(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, model.AuthorPath(id))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := request.Int64Param(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	view, err := h.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.HAL(c, http.StatusOK, view.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: Patch - PATCH /v1/authors/:id
// Body: RFC 6902 document, application/json-patch+json or application/json
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Patch(c *gin.Context) {
	id, err := request.Int64Param(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	document, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPatchBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body too large")
			return
		}
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.service.PatchAuthor(c.Request.Context(), id, document)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.HAL(c, http.StatusOK, view.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/authors?sortType=&page=&size=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	sort, err := model.ParseAuthorSort(c.Query("sortType"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, err := request.Page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.ListAuthors(c.Request.Context(), sort, page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.HAL(c, http.StatusOK, response.NewPagedModel("authors", result, response.SelfLink(c), model.AuthorView.ToResponse))
}

// ════════════════════════════════════════════════════════════════
// READ: Books - GET /v1/authors/:id/books?page=&size=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Books(c *gin.Context) {
	id, err := request.Int64Param(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, err := request.Page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.FindBooks(c.Request.Context(), id, page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.HAL(c, http.StatusOK, response.NewPagedModel("books", result, response.SelfLink(c), bookModel.Book.ToResponse))
}
