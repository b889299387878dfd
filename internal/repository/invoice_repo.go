package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// GetByID fetches a single invoice with its lines and relations.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_lines.position") }).
		Preload("VatRateObj").
		Preload("Client").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices with optional status and client filters,
// newest first.
func (r *InvoiceRepository) List(status string, clientID *uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice

	query := r.db.Model(&models.Invoice{}).
		Preload("Lines").
		Preload("VatRateObj").
		Preload("Client").
		Order("date DESC, number DESC")

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}

	err := query.Find(&invoices).Error
	return invoices, err
}

// NumbersWithPrefix returns all invoice numbers starting with prefix,
// e.g. "2025-". Used by the numbering allocator.
func (r *InvoiceRepository) NumbersWithPrefix(prefix string) ([]string, error) {
	var numbers []string
	err := r.db.Model(&models.Invoice{}).
		Where("number LIKE ?", prefix+"%").
		Order("number DESC").
		Pluck("number", &numbers).Error
	return numbers, err
}

// NumberExists checks whether any invoice holds the exact number.
func (r *InvoiceRepository) NumberExists(number string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).
		Where("number = ?", number).
		Count(&count).Error
	return count > 0, err
}

// Delete removes an invoice; its lines go with it via the cascade
// constraint.
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	return r.db.Select("Lines").Delete(&models.Invoice{ID: id}).Error
}

// ListOverdue returns unpaid invoices whose due date lies before the
// given day. Overdue is not a stored status, so this is always a scan.
func (r *InvoiceRepository) ListOverdue(now time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err := r.db.
		Preload("Client").
		Where("due_date < ? AND status = ?", day, models.StatusUnpaid).
		Order("due_date ASC").
		Find(&invoices).Error
	return invoices, err
}
