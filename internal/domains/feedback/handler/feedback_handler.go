package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/feedback"
	"scentpress-backend/internal/shared/response"
)

type FeedbackHandler struct {
	service feedback.Service
}

func NewFeedbackHandler(svc feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// Add handles POST /feedback/addFeedback
func (h *FeedbackHandler) Add(c *gin.Context) {
	var req feedback.FeedbackRequest
	_ = c.ShouldBindJSON(&req)

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, feedback.ToHTTPStatus(err), "FEEDBACK_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Feedback added successfully", created)
}

// GetAll handles GET /feedback/getAllFeedbacks
func (h *FeedbackHandler) GetAll(c *gin.Context) {
	feedbacks, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch feedbacks")
		return
	}
	response.Success(c, http.StatusOK, "Success", feedbacks)
}

// Delete handles DELETE /feedback/deleteFeedback/:id
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid feedback id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, feedback.ToHTTPStatus(err), "FEEDBACK_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Feedback deleted successfully", deleted)
}
