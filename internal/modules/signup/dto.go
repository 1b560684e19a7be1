package signup

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// CreateSignupRequest is the one-shot insert payload the SPA posts
// after its final page. Field rules mirror the form pages.
type CreateSignupRequest struct {
	Email               string `json:"email" binding:"required,max=255"`
	FirstName           string `json:"firstName" binding:"required,max=100"`
	LastName            string `json:"lastName" binding:"required,max=100"`
	Phone               string `json:"phone" binding:"omitempty,max=30"`
	Interest            string `json:"interest" binding:"required,max=2000"`
	ParticipateResearch bool   `json:"participateResearch"`
	NotifyLaunch        bool   `json:"notifyLaunch"`
	HowHeard            string `json:"howHeard" binding:"omitempty,max=50"`
	OtherSource         string `json:"otherSource" binding:"omitempty,max=200"`
}

// AdvanceRequest carries the current page's field values into a session
// transition.
type AdvanceRequest struct {
	Fields map[string]string `json:"fields"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
	State     State  `json:"state"`
}

type SignupResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
}
