package domain

import "time"

// Inquiry statuses.
const (
	InquiryStatusNew     = "new"
	InquiryStatusRead    = "read"
	InquiryStatusReplied = "replied"
)

// ContactInquiry is a stored contact-form submission. The email sent to
// the team is transient; the row is what the admin listing reads.
type ContactInquiry struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Message   string
	Status    string
	CreatedAt time.Time
}
