package mailer

import (
	"context"

	"mentorloop/internal/domain"
)

// Sender couples the prepare pipeline with a dispatcher. It is the one
// type the rest of the app talks to.
type Sender struct {
	service    *Service
	dispatcher Dispatcher
}

func NewSender(service *Service, dispatcher Dispatcher) *Sender {
	return &Sender{service: service, dispatcher: dispatcher}
}

// Send validates, renders and dispatches in one call.
func (s *Sender) Send(ctx context.Context, req Request) error {
	msg, err := s.service.Prepare(req)
	if err != nil {
		return err
	}
	return s.dispatcher.Send(ctx, msg)
}

// SendSignupConfirmation is the signup module's hook: one templated
// confirmation per successful insert.
func (s *Sender) SendSignupConfirmation(ctx context.Context, variant domain.Variant, email, firstName string) error {
	return s.Send(ctx, Request{
		Kind:      KindConfirmation,
		FirstName: firstName,
		Email:     email,
		UserType:  string(variant),
	})
}
