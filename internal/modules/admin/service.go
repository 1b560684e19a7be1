// Package admin is the read-only dashboard surface: a single
// env-configured operator account and listings over the captured leads.
package admin

import (
	"context"
	"strings"

	"mentorloop/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(email, role string) (string, error)
}

// SignupLister is the listing slice of a variant's repository.
type SignupLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.Signup, error)
}

type InquiryLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.ContactInquiry, error)
}

type Service struct {
	email        string
	passwordHash string
	jwt          jwtService
	learners     SignupLister
	mentors      SignupLister
	inquiries    InquiryLister
}

func NewService(email, passwordHash string, jwt jwtService, learners, mentors SignupLister, inquiries InquiryLister) *Service {
	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		jwt:          jwt,
		learners:     learners,
		mentors:      mentors,
		inquiries:    inquiries,
	}
}

// Login checks the operator credentials and issues a dashboard token.
func (s *Service) Login(email, password string) (string, error) {
	if s.email == "" || s.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(s.email, "admin")
}

func (s *Service) ListSignups(ctx context.Context, variant domain.Variant, limit, offset int) ([]domain.Signup, error) {
	if variant == domain.VariantMentor {
		return s.mentors.List(ctx, limit, offset)
	}
	return s.learners.List(ctx, limit, offset)
}

func (s *Service) ListInquiries(ctx context.Context, limit, offset int) ([]domain.ContactInquiry, error) {
	return s.inquiries.List(ctx, limit, offset)
}
