package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"mentorloop/internal/domain"
	"mentorloop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(admin *gin.RouterGroup) {
	admin.POST("/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(admin *gin.RouterGroup) {
	admin.GET("/signups", h.ListSignups)
	admin.GET("/inquiries", h.ListInquiries)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListSignups(c *gin.Context) {
	variant := domain.Variant(c.DefaultQuery("variant", string(domain.VariantLearner)))
	if !variant.Valid() {
		response.Error(c, http.StatusBadRequest, "INVALID_VARIANT", "Variant must be learner or mentor")
		return
	}
	limit, offset := pagination(c)

	signups, err := h.service.ListSignups(c.Request.Context(), variant, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load signups")
		return
	}

	items := make([]SignupItem, 0, len(signups))
	for _, s := range signups {
		items = append(items, SignupItem{
			ID:           s.ID,
			Email:        s.Email,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			Phone:        s.Phone,
			Interest:     s.Interest,
			NotifyLaunch: s.NotifyLaunch,
			HowHeard:     s.HowHeard,
			CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"variant": variant,
		"signups": items,
	})
}

func (h *Handler) ListInquiries(c *gin.Context) {
	limit, offset := pagination(c)

	inquiries, err := h.service.ListInquiries(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load inquiries")
		return
	}

	items := make([]InquiryItem, 0, len(inquiries))
	for _, in := range inquiries {
		items = append(items, InquiryItem{
			ID:        in.ID,
			Name:      in.FirstName + " " + in.LastName,
			Email:     in.Email,
			Message:   in.Message,
			Status:    in.Status,
			CreatedAt: in.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Success(c, http.StatusOK, gin.H{"inquiries": items})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
