package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on
// first access.
func (r *SettingsRepository) Get() (*models.CompanySettings, error) {
	var settings models.CompanySettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.CompanySettings{
			ID:             uuid.New(),
			CompanyName:    "Minu Ettevõte",
			DefaultVatRate: decimal.NewFromInt(24),
		}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(settings *models.CompanySettings) error {
	return r.db.Save(settings).Error
}

// DefaultVatRate resolves the configured default VAT percentage: the
// referenced VatRate row when set, otherwise the inline fallback.
func (r *SettingsRepository) DefaultVatRate() (decimal.Decimal, error) {
	settings, err := r.Get()
	if err != nil {
		return decimal.Zero, err
	}
	if settings.DefaultVatRateID != nil {
		var rate models.VatRate
		if err := r.db.First(&rate, "id = ?", *settings.DefaultVatRateID).Error; err == nil {
			return rate.Rate, nil
		}
	}
	return settings.DefaultVatRate, nil
}
