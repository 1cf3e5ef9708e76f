package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/category"
	"scentpress-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// Add handles POST /category/addCategory
func (h *CategoryHandler) Add(c *gin.Context) {
	var req category.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, category.ToHTTPStatus(err), "CATEGORY_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Category added successfully", created)
}

// GetAll handles GET /category/getAllCategories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch categories")
		return
	}
	response.Success(c, http.StatusOK, "Success", categories)
}

// GetByID handles GET /category/getCategory/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to fetch category")
		}
		return
	}
	response.Success(c, http.StatusOK, "Success", cat)
}

// Update handles PUT /category/updateCategory/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req category.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, category.ToHTTPStatus(err), "CATEGORY_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", updated)
}

// Delete handles DELETE /category/deleteCategory/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, category.ToHTTPStatus(err), "CATEGORY_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", deleted)
}
