package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository is a small key/value store for site-wide
// configuration rows (currently only the theme preference).
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (settingRow) TableName() string { return "settings" }

// Get returns the stored value, or ("", gorm.ErrRecordNotFound) when
// the key has never been written.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var m settingRow
	tx := r.db.WithContext(ctx).Where("key = ?", key).First(&m)
	if tx.Error != nil {
		return "", tx.Error
	}
	return m.Value, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	m := settingRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&m).Error
}
