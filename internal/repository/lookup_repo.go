package repository

import (
	"errors"

	"gorm.io/gorm"

	"invoicing-backend/internal/models"
)

// LookupRepository serves the small reference tables behind the
// settings pages: payment terms and penalty rates.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) ActivePaymentTerms() ([]models.PaymentTerms, error) {
	var terms []models.PaymentTerms
	err := r.db.Where("is_active = ?", true).Order("days ASC").Find(&terms).Error
	return terms, err
}

func (r *LookupRepository) DefaultPaymentTerms() (*models.PaymentTerms, error) {
	var term models.PaymentTerms
	err := r.db.Where("is_default = ? AND is_active = ?", true, true).First(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *LookupRepository) ActivePenaltyRates() ([]models.PenaltyRate, error) {
	var rates []models.PenaltyRate
	err := r.db.Where("is_active = ?", true).Order("rate_per_day ASC").Find(&rates).Error
	return rates, err
}
