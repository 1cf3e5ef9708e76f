package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/comment"
	"scentpress-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{service: svc}
}

// Add handles POST /comment/addComment
func (h *CommentHandler) Add(c *gin.Context) {
	var req comment.CommentRequest
	_ = c.ShouldBindJSON(&req)

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), "COMMENT_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Comment added successfully", created)
}

// GetAll handles GET /comment/getAllComments
func (h *CommentHandler) GetAll(c *gin.Context) {
	comments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch comments")
		return
	}
	response.Success(c, http.StatusOK, "Success", comments)
}

// Approve handles PUT /comment/approveComment/:id
func (h *CommentHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	approved, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), "COMMENT_APPROVE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Comment approved successfully", approved)
}

// Delete handles DELETE /comment/deleteComment/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), "COMMENT_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Comment deleted successfully", deleted)
}
