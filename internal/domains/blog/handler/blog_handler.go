package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/blog"
	"scentpress-backend/internal/shared/response"
	"scentpress-backend/internal/shared/upload"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{service: svc}
}

// Add handles POST /blog/addBlog
func (h *BlogHandler) Add(c *gin.Context) {
	var form blog.BlogForm
	_ = c.ShouldBind(&form)

	created, err := h.service.Create(c.Request.Context(), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "BLOG_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Blog added successfully", created)
}

// GetAll handles GET /blog/getAllBlogs
func (h *BlogHandler) GetAll(c *gin.Context) {
	blogs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch blogs")
		return
	}
	response.Success(c, http.StatusOK, "Success", blogs)
}

// GetBySlug handles GET /blog/getBlogBySlug/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to fetch blog")
		}
		return
	}
	response.Success(c, http.StatusOK, "Success", b)
}

// Update handles PUT /blog/updateBlog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	var form blog.BlogForm
	_ = c.ShouldBind(&form)

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "BLOG_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Blog updated successfully", updated)
}

// Delete handles DELETE /blog/deleteBlog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "BLOG_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Blog deleted successfully", deleted)
}
