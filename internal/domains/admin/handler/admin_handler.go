package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scentpress-backend/internal/domains/admin"
	"scentpress-backend/internal/shared/response"
)

type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, admin.ToHTTPStatus(err), "LOGIN_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}
