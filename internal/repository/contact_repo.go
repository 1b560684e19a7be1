package repository

import (
	"context"
	"strings"
	"time"

	"mentorloop/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type inquiryRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Email     string    `gorm:"column:email;index"`
	Message   string    `gorm:"column:message;type:text"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (inquiryRow) TableName() string { return "contact_inquiries" }

func toDomainInquiry(m inquiryRow) *domain.ContactInquiry {
	return &domain.ContactInquiry{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, in *domain.ContactInquiry) error {
	m := inquiryRow{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Message:   in.Message,
		Status:    in.Status,
		CreatedAt: in.CreatedAt,
	}
	if m.Status == "" {
		m.Status = domain.InquiryStatusNew
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*in = *toDomainInquiry(m)
	return nil
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactInquiry, error) {
	var rows []inquiryRow
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ContactInquiry, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInquiry(m))
	}
	return out, nil
}
