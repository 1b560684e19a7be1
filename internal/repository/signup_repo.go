package repository

import (
	"context"
	"strings"
	"time"

	"mentorloop/internal/domain"

	"gorm.io/gorm"
)

// SignupRepository reads and writes one variant's collection. Learners
// and mentors share a row shape but live in separate tables.
type SignupRepository struct {
	db    *gorm.DB
	table string
}

func NewSignupRepository(db *gorm.DB, variant domain.Variant) *SignupRepository {
	table := "learners"
	if variant == domain.VariantMentor {
		table = "mentors"
	}
	return &SignupRepository{db: db, table: table}
}

type signupRow struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	Email               string    `gorm:"column:email;uniqueIndex"`
	FirstName           string    `gorm:"column:first_name"`
	LastName            string    `gorm:"column:last_name"`
	Phone               *string   `gorm:"column:phone"`
	Interest            string    `gorm:"column:interest"`
	ParticipateResearch bool      `gorm:"column:participate_research"`
	NotifyLaunch        bool      `gorm:"column:notify_launch"`
	HowHeard            string    `gorm:"column:how_heard"`
	OtherSource         *string   `gorm:"column:other_source"`
	CreatedAt           time.Time `gorm:"column:created_at"`
}

func toDomainSignup(m signupRow) *domain.Signup {
	var phone, other string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.OtherSource != nil {
		other = *m.OtherSource
	}

	return &domain.Signup{
		ID:                  m.ID,
		Email:               m.Email,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Phone:               phone,
		Interest:            m.Interest,
		ParticipateResearch: m.ParticipateResearch,
		NotifyLaunch:        m.NotifyLaunch,
		HowHeard:            m.HowHeard,
		OtherSource:         other,
		CreatedAt:           m.CreatedAt,
	}
}

func toSignupRow(s *domain.Signup) signupRow {
	email := strings.ToLower(strings.TrimSpace(s.Email))

	var phone, other *string
	if s.Phone != "" {
		v := s.Phone
		phone = &v
	}
	if s.OtherSource != "" {
		v := s.OtherSource
		other = &v
	}

	return signupRow{
		ID:                  s.ID,
		Email:               email,
		FirstName:           s.FirstName,
		LastName:            s.LastName,
		Phone:               phone,
		Interest:            s.Interest,
		ParticipateResearch: s.ParticipateResearch,
		NotifyLaunch:        s.NotifyLaunch,
		HowHeard:            s.HowHeard,
		OtherSource:         other,
		CreatedAt:           s.CreatedAt,
	}
}

func (r *SignupRepository) Create(ctx context.Context, s *domain.Signup) error {
	m := toSignupRow(s)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	tx := r.db.WithContext(ctx).Table(r.table).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSignup(m)
	return nil
}

func (r *SignupRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Table(r.table).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *SignupRepository) List(ctx context.Context, limit, offset int) ([]domain.Signup, error) {
	var rows []signupRow
	tx := r.db.WithContext(ctx).Table(r.table).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Signup, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSignup(m))
	}
	return out, nil
}
