package signup

import (
	"errors"
	"net/http"

	"mentorloop/internal/domain"
	"mentorloop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the duplicate-check gate, the one-shot insert, and
// the session-backed multi-step workflow.
type Handler struct {
	service  *Service
	sessions *SessionStore
}

func NewHandler(service *Service, sessions *SessionStore) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/signup")
	{
		g.POST("/session/:id/advance", h.AdvanceSession)
		g.POST("/session/:id/back", h.BackSession)
		g.POST("/session/:id/submit", h.SubmitSession)
		g.GET("/session/:id", h.GetSession)

		g.POST("/:variant/check-email", h.CheckEmail)
		g.POST("/:variant/session", h.StartSession)
		g.POST("/:variant", h.Create)
	}
}

func variantParam(c *gin.Context) (domain.Variant, bool) {
	v := domain.Variant(c.Param("variant"))
	if !v.Valid() {
		response.Error(c, http.StatusBadRequest, "INVALID_VARIANT", "Variant must be learner or mentor")
		return "", false
	}
	return v, true
}

// CheckEmail runs the duplicate-check gate for one address.
func (h *Handler) CheckEmail(c *gin.Context) {
	variant, ok := variantParam(c)
	if !ok {
		return
	}

	var req CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.CheckEmail(c.Request.Context(), variant, req.Email); err != nil {
		h.renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"duplicate": false})
}

// Create inserts a signup record directly, re-running the duplicate
// check first.
func (h *Handler) Create(c *gin.Context) {
	variant, ok := variantParam(c)
	if !ok {
		return
	}

	var req CreateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec := &domain.Signup{
		Email:               req.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Phone:               req.Phone,
		Interest:            req.Interest,
		ParticipateResearch: req.ParticipateResearch,
		NotifyLaunch:        req.NotifyLaunch,
		HowHeard:            req.HowHeard,
		OtherSource:         req.OtherSource,
	}

	created, err := h.service.Create(c.Request.Context(), variant, rec)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, SignupResponse{
		ID:        created.ID,
		Email:     created.Email,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		CreatedAt: created.CreatedAt.Format("2006-01-02"),
	})
}

// StartSession opens a fresh workflow for the variant.
func (h *Handler) StartSession(c *gin.Context) {
	variant, ok := variantParam(c)
	if !ok {
		return
	}

	id, wf := h.sessions.Create(variant, h.service)
	response.Success(c, http.StatusCreated, SessionResponse{SessionID: id, State: wf.State()})
}

func (h *Handler) GetSession(c *gin.Context) {
	wf, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, wf.State())
}

// AdvanceSession applies page-1 edits and attempts the transition to
// the details page.
func (h *Handler) AdvanceSession(c *gin.Context) {
	wf, ok := h.session(c)
	if !ok {
		return
	}

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	wf.SetFields(req.Fields)

	if err := wf.AdvanceBasicInfo(c.Request.Context()); err != nil {
		h.renderWorkflowError(c, wf, err)
		return
	}

	response.Success(c, http.StatusOK, wf.State())
}

func (h *Handler) BackSession(c *gin.Context) {
	wf, ok := h.session(c)
	if !ok {
		return
	}

	if err := wf.Back(); err != nil {
		h.renderWorkflowError(c, wf, err)
		return
	}

	response.Success(c, http.StatusOK, wf.State())
}

// SubmitSession applies page-2 edits and attempts the final insert.
func (h *Handler) SubmitSession(c *gin.Context) {
	wf, ok := h.session(c)
	if !ok {
		return
	}

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	wf.SetFields(req.Fields)

	if _, err := wf.SubmitDetails(c.Request.Context()); err != nil {
		h.renderWorkflowError(c, wf, err)
		return
	}

	response.Success(c, http.StatusOK, wf.State())
}

func (h *Handler) session(c *gin.Context) (*Workflow, bool) {
	wf, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Signup session not found or expired")
		return nil, false
	}
	return wf, true
}

func (h *Handler) renderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered):
		response.ErrorWithDetails(c, http.StatusConflict, "EMAIL_EXISTS",
			"This email is already registered",
			gin.H{FieldEmail: msgEmailRegistered})
	case errors.Is(err, ErrInvalidVariant):
		response.Error(c, http.StatusBadRequest, "INVALID_VARIANT", "Variant must be learner or mentor")
	default:
		response.Error(c, http.StatusServiceUnavailable, "CHECK_FAILED",
			"Could not reach signup storage. Please try again.")
	}
}

// renderWorkflowError folds transition failures into the envelope; the
// response always carries the current workflow state so the client can
// re-render inline errors.
func (h *Handler) renderWorkflowError(c *gin.Context, wf *Workflow, err error) {
	var fieldErrs FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Please fix the highlighted fields", wf.State())
	case errors.Is(err, ErrEmailAlreadyRegistered):
		response.ErrorWithDetails(c, http.StatusConflict, "EMAIL_EXISTS",
			"This email is already registered", wf.State())
	case errors.Is(err, ErrSubmitInProgress):
		response.Error(c, http.StatusConflict, "SUBMIT_IN_PROGRESS", "A submission is already in progress")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Transition not allowed from the current page")
	default:
		response.ErrorWithDetails(c, http.StatusServiceUnavailable, "CHECK_FAILED",
			"Something went wrong. Please try again.", wf.State())
	}
}
