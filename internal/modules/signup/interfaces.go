package signup

import (
	"context"

	"mentorloop/internal/domain"
)

// SignupRepositoryInterface is the slice of the repository the service
// uses, one instance per variant collection.
type SignupRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Signup) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ConfirmationMailer sends the post-signup confirmation email. A
// failure here never rolls back the insert.
type ConfirmationMailer interface {
	SendSignupConfirmation(ctx context.Context, variant domain.Variant, email, firstName string) error
}

// EventPublisher pushes new-signup events to connected admin
// dashboards. Fire and forget.
type EventPublisher interface {
	SignupCreated(variant domain.Variant, s *domain.Signup)
}
