package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/perfumer"
	"scentpress-backend/internal/shared/response"
	"scentpress-backend/internal/shared/upload"
)

type PerfumerHandler struct {
	service perfumer.Service
}

func NewPerfumerHandler(svc perfumer.Service) *PerfumerHandler {
	return &PerfumerHandler{service: svc}
}

// Add handles POST /perfumer/addPerfumer
func (h *PerfumerHandler) Add(c *gin.Context) {
	var form perfumer.PerfumerForm
	_ = c.ShouldBind(&form)

	created, err := h.service.Create(c.Request.Context(), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, perfumer.ToHTTPStatus(err), "PERFUMER_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Perfumer added successfully", created)
}

// GetAll handles GET /perfumer/getAllPerfumers
func (h *PerfumerHandler) GetAll(c *gin.Context) {
	perfumers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch perfumers")
		return
	}
	response.Success(c, http.StatusOK, "Success", perfumers)
}

// GetBySlug handles GET /perfumer/getPerfumerBySlug/:slug
func (h *PerfumerHandler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, perfumer.ErrNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to fetch perfumer")
		}
		return
	}
	response.Success(c, http.StatusOK, "Success", p)
}

// Update handles PUT /perfumer/updatePerfumer/:id
func (h *PerfumerHandler) Update(c *gin.Context) {
	var form perfumer.PerfumerForm
	_ = c.ShouldBind(&form)

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, perfumer.ToHTTPStatus(err), "PERFUMER_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Perfumer updated successfully", updated)
}

// Delete handles DELETE /perfumer/deletePerfumer/:id
func (h *PerfumerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid perfumer id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, perfumer.ToHTTPStatus(err), "PERFUMER_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Perfumer deleted successfully", deleted)
}
