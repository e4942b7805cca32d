package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tzevk/accent-sub006/internal/shared/apperror"
	"github.com/tzevk/accent-sub006/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.SetCookie("access_token", resp.AccessToken, 3600*12, "/", "", false, true)
	response.Success(c, http.StatusOK, resp, nil)
}
