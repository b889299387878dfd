package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// List returns clients, optionally filtered by a case-insensitive name
// search.
func (r *ClientRepository) List(search string) ([]models.Client, error) {
	var clients []models.Client
	query := r.db.Model(&models.Client{}).Order("name ASC")
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := query.Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepository) Save(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete removes a client together with its invoices (cascade).
func (r *ClientRepository) Delete(id uuid.UUID) error {
	return r.db.Select("Invoices").Delete(&models.Client{ID: id}).Error
}

// ClientStats aggregates a client's invoicing history.
type ClientStats struct {
	InvoiceCount int64           `json:"invoice_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	PaidRevenue  decimal.Decimal `json:"paid_revenue"`
}

// Stats sums the client's invoice totals overall and for paid
// invoices only.
func (r *ClientRepository) Stats(id uuid.UUID) (ClientStats, error) {
	var stats ClientStats

	row := struct {
		Count int64
		Total decimal.Decimal
		Paid  decimal.Decimal
	}{}

	err := r.db.Model(&models.Invoice{}).
		Select("COUNT(*) as count, COALESCE(SUM(total),0) as total, COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END),0) as paid", models.StatusPaid).
		Where("client_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return stats, err
	}

	stats.InvoiceCount = row.Count
	stats.TotalRevenue = row.Total
	stats.PaidRevenue = row.Paid
	return stats, nil
}
