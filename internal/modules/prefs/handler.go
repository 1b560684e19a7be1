package prefs

import (
	"errors"
	"net/http"

	"mentorloop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/prefs")
	{
		g.GET("/theme", h.GetTheme)
		g.PUT("/theme", h.SetTheme)
	}
}

func (h *Handler) GetTheme(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"theme": h.service.Current()})
}

type setThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req setThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Set(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			response.Error(c, http.StatusBadRequest, "INVALID_THEME", "Theme must be light, dark or system")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORE_FAILED", "Could not save preference. Please try again.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"theme": h.service.Current()})
}
