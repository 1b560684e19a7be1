// Package contact exposes the two transactional-mail endpoints the
// marketing site calls: the contact form and the signup-confirmation
// trigger. Both feed the same tagged request pipeline in the mailer
// module.
package contact

import (
	"context"
	"errors"
	"log"
	"net/http"

	"mentorloop/internal/domain"
	"mentorloop/internal/modules/mailer"
	"mentorloop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// MailSender is the slice of the mailer the handlers need.
type MailSender interface {
	Send(ctx context.Context, req mailer.Request) error
}

// InquiryStore persists contact submissions for the admin listing.
type InquiryStore interface {
	Create(ctx context.Context, in *domain.ContactInquiry) error
}

type Handler struct {
	sender    MailSender
	inquiries InquiryStore
}

func NewHandler(sender MailSender, inquiries InquiryStore) *Handler {
	return &Handler{sender: sender, inquiries: inquiries}
}

// RegisterRoutes mounts the endpoints at the site's /api paths. Any
// registers all methods so non-POST calls get an explicit 405.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Any("/contact", h.Contact)
	api.Any("/signup-confirmation", h.SignupConfirmation)
}

func (h *Handler) Contact(c *gin.Context) {
	if !requirePost(c) {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields")
		return
	}

	// The inquiry row is best-effort; the email is what the endpoint
	// promises.
	if h.inquiries != nil {
		inquiry := &domain.ContactInquiry{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Message:   req.Message,
		}
		if err := h.inquiries.Create(c.Request.Context(), inquiry); err != nil {
			log.Printf("contact inquiry store failed: email=%s err=%v", req.Email, err)
		}
	}

	err := h.sender.Send(c.Request.Context(), mailer.Request{
		Kind:      mailer.KindContact,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	})
	if err != nil {
		h.renderSendError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func (h *Handler) SignupConfirmation(c *gin.Context) {
	if !requirePost(c) {
		return
	}

	var req ConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields")
		return
	}

	err := h.sender.Send(c.Request.Context(), mailer.Request{
		Kind:      mailer.KindConfirmation,
		FirstName: req.FirstName,
		Email:     req.Email,
		UserType:  req.UserType,
	})
	if err != nil {
		h.renderSendError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func requirePost(c *gin.Context) bool {
	if c.Request.Method != http.MethodPost {
		response.Error(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is supported")
		return false
	}
	return true
}

func (h *Handler) renderSendError(c *gin.Context, err error) {
	var validation *mailer.ValidationError
	var upstream *mailer.UpstreamError

	switch {
	case errors.As(err, &validation):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Missing required fields", validation.Fields)
	case errors.Is(err, mailer.ErrMissingAPIKey):
		// Never leak which credential is missing.
		log.Printf("mail config error: %v", err)
		response.Error(c, http.StatusInternalServerError, "CONFIG_ERROR", "Email service is not available")
	case errors.As(err, &upstream):
		log.Printf("mail upstream error: %v", err)
		response.Error(c, upstream.Status, "UPSTREAM_ERROR", upstream.Message)
	default:
		log.Printf("mail send error: %v", err)
		response.Error(c, http.StatusInternalServerError, "SEND_FAILED", "Failed to send email")
	}
}
