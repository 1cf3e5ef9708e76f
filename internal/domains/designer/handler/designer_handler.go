package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/designer"
	"scentpress-backend/internal/shared/response"
	"scentpress-backend/internal/shared/upload"
)

type DesignerHandler struct {
	service designer.Service
}

func NewDesignerHandler(svc designer.Service) *DesignerHandler {
	return &DesignerHandler{service: svc}
}

// Add handles POST /designer/addDesigner
func (h *DesignerHandler) Add(c *gin.Context) {
	var form designer.DesignerForm
	_ = c.ShouldBind(&form) // missing fields are reported by the pipeline

	created, err := h.service.Create(c.Request.Context(), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, designer.ToHTTPStatus(err), "DESIGNER_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Designer added successfully", created)
}

// GetAll handles GET /designer/getAllDesigners
func (h *DesignerHandler) GetAll(c *gin.Context) {
	designers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch designers")
		return
	}
	response.Success(c, http.StatusOK, "Success", designers)
}

// GetBySlug handles GET /designer/getDesignerBySlug/:slug
func (h *DesignerHandler) GetBySlug(c *gin.Context) {
	d, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, designer.ErrNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to fetch designer")
		}
		return
	}
	response.Success(c, http.StatusOK, "Success", d)
}

// Update handles PUT /designer/updateDesigner/:slug
func (h *DesignerHandler) Update(c *gin.Context) {
	var form designer.DesignerForm
	_ = c.ShouldBind(&form)

	updated, err := h.service.Update(c.Request.Context(), c.Param("slug"), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, designer.ToHTTPStatus(err), "DESIGNER_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Designer updated successfully", updated)
}

// Delete handles DELETE /designer/deleteDesigner/:id
func (h *DesignerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid designer id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, designer.ToHTTPStatus(err), "DESIGNER_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Designer deleted successfully", deleted)
}
