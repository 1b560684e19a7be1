// Package mailer renders and dispatches transactional email. Both
// public endpoints (contact form, signup confirmation) feed one tagged
// request type through a shared validate/render pipeline, then hand the
// resulting message to a Dispatcher.
package mailer

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Kind discriminates the two mail shapes.
type Kind string

const (
	KindContact      Kind = "contact"
	KindConfirmation Kind = "confirmation"
)

// Request is the tagged union both endpoints produce. Which fields are
// required depends on Kind.
type Request struct {
	Kind Kind `json:"kind" validate:"required,oneof=contact confirmation"`

	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required_if=Kind contact"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message"`

	// learner or mentor; selects the confirmation template.
	UserType string `json:"userType" validate:"required_if=Kind confirmation,omitempty,oneof=learner mentor"`
}

// Message is the transient wire shape sent to the provider. Never
// persisted.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Dispatcher delivers a prepared message. Implementations make at most
// one upstream attempt; retry policy belongs to the caller.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// Service validates requests, renders bodies and picks addressing.
type Service struct {
	from      string
	contactTo string
	validate  *validator.Validate
}

func NewService(from, contactTo string) *Service {
	return &Service{
		from:      from,
		contactTo: contactTo,
		validate:  validator.New(),
	}
}

// Prepare validates the request for its kind and renders the message.
// Contact mail goes to the team inbox with reply-to set to the
// submitter; confirmation mail goes to the signup address.
func (s *Service) Prepare(req Request) (Message, error) {
	if err := s.validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		return Message{}, &ValidationError{Fields: fields}
	}

	switch req.Kind {
	case KindContact:
		return Message{
			From:    s.from,
			To:      []string{s.contactTo},
			ReplyTo: req.Email,
			Subject: "New message from " + req.FirstName + " " + req.LastName,
			HTML:    renderContact(req),
		}, nil
	default:
		return Message{
			From:    s.from,
			To:      []string{req.Email},
			Subject: confirmationSubject(req.UserType),
			HTML:    renderConfirmation(req),
		}, nil
	}
}
