package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/author"
	"scentpress-backend/internal/shared/response"
	"scentpress-backend/internal/shared/upload"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Add handles POST /author/addAuthor
func (h *AuthorHandler) Add(c *gin.Context) {
	var form author.AuthorForm
	_ = c.ShouldBind(&form)

	created, err := h.service.Create(c.Request.Context(), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "AUTHOR_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Author added successfully", created)
}

// GetAll handles GET /author/getAllAuthors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch authors")
		return
	}
	response.Success(c, http.StatusOK, "Success", authors)
}

// GetBySlug handles GET /author/getAuthorBySlug/:slug
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to fetch author")
		}
		return
	}
	response.Success(c, http.StatusOK, "Success", a)
}

// Update handles PUT /author/updateAuthor/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var form author.AuthorForm
	_ = c.ShouldBind(&form)

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "AUTHOR_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Author updated successfully", updated)
}

// Delete handles DELETE /author/deleteAuthor/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "AUTHOR_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Author deleted successfully", deleted)
}
