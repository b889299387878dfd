package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
)

type VatRateRepository struct {
	db *gorm.DB
}

func NewVatRateRepository(db *gorm.DB) *VatRateRepository {
	return &VatRateRepository{db: db}
}

// Active returns active VAT rates ordered by percentage.
func (r *VatRateRepository) Active() ([]models.VatRate, error) {
	var rates []models.VatRate
	err := r.db.Where("is_active = ?", true).Order("rate ASC").Find(&rates).Error
	return rates, err
}

func (r *VatRateRepository) GetByID(id uuid.UUID) (*models.VatRate, error) {
	var rate models.VatRate
	if err := r.db.First(&rate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

// Default returns the VAT rate flagged as the application default, or
// nil when none is flagged.
func (r *VatRateRepository) Default() (*models.VatRate, error) {
	var rate models.VatRate
	err := r.db.Where("is_default = ? AND is_active = ?", true, true).First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *VatRateRepository) Create(rate *models.VatRate) error {
	return r.db.Create(rate).Error
}

func (r *VatRateRepository) Save(rate *models.VatRate) error {
	return r.db.Save(rate).Error
}

func (r *VatRateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.VatRate{}, "id = ?", id).Error
}

// SetDefault flags one rate as the default and unsets the previous
// holder in the same transaction, keeping at most one default row.
func (r *VatRateRepository) SetDefault(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VatRate{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.VatRate{}).
			Where("id = ?", id).
			Update("is_default", true).Error
	})
}
