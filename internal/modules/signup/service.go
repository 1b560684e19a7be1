package signup

import (
	"context"
	"errors"
	"log"
	"strings"

	"mentorloop/internal/domain"
	"mentorloop/internal/pkg/emailcheck"

	"gorm.io/gorm"
)

// Service implements the duplicate-check gate and record creation for
// both signup variants.
type Service struct {
	learners SignupRepositoryInterface
	mentors  SignupRepositoryInterface
	mailer   ConfirmationMailer
	events   EventPublisher
}

func NewService(learners, mentors SignupRepositoryInterface, mailer ConfirmationMailer, events EventPublisher) *Service {
	return &Service{
		learners: learners,
		mentors:  mentors,
		mailer:   mailer,
		events:   events,
	}
}

func (s *Service) repo(variant domain.Variant) (SignupRepositoryInterface, error) {
	switch variant {
	case domain.VariantLearner:
		return s.learners, nil
	case domain.VariantMentor:
		return s.mentors, nil
	default:
		return nil, ErrInvalidVariant
	}
}

// CheckEmail is the duplicate-check gate. The verdict is advisory: two
// concurrent submissions can both pass it, which is why the tables also
// carry a unique email index (see Create).
func (s *Service) CheckEmail(ctx context.Context, variant domain.Variant, email string) error {
	repo, err := s.repo(variant)
	if err != nil {
		return err
	}

	exists, err := repo.ExistsByEmail(ctx, emailcheck.Normalize(email))
	if err != nil {
		return errors.Join(ErrCheckUnavailable, err)
	}
	if exists {
		return ErrEmailAlreadyRegistered
	}
	return nil
}

// Create re-runs the duplicate check, inserts the record, then fires
// the confirmation email and the dashboard event. Mail and event
// failures are logged, never surfaced: the signup already happened.
func (s *Service) Create(ctx context.Context, variant domain.Variant, rec *domain.Signup) (*domain.Signup, error) {
	repo, err := s.repo(variant)
	if err != nil {
		return nil, err
	}

	rec.Email = emailcheck.Normalize(rec.Email)

	exists, err := repo.ExistsByEmail(ctx, rec.Email)
	if err != nil {
		return nil, errors.Join(ErrCheckUnavailable, err)
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	if err := repo.Create(ctx, rec); err != nil {
		if isDuplicateKey(err) {
			// Lost the race against a concurrent submission; same
			// outcome as the pre-check.
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errors.Join(ErrCheckUnavailable, err)
	}

	if s.mailer != nil {
		if mailErr := s.mailer.SendSignupConfirmation(ctx, variant, rec.Email, rec.FirstName); mailErr != nil {
			log.Printf("signup confirmation mail failed: variant=%s email=%s err=%v", variant, rec.Email, mailErr)
		}
	}
	if s.events != nil {
		s.events.SignupCreated(variant, rec)
	}

	return rec, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
