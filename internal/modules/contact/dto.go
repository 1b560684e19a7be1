package contact

// ContactRequest is the contact-form payload. Message is optional, per
// the form.
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,max=255"`
	Message   string `json:"message" binding:"omitempty,max=10000"`
}

// ConfirmationRequest triggers a signup-confirmation send. UserType
// selects which of the two templates is rendered.
type ConfirmationRequest struct {
	Email     string `json:"email" binding:"required,max=255"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	UserType  string `json:"userType" binding:"required,oneof=learner mentor"`
}
