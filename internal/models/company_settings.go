package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CompanySettings is the singleton row holding the issuing company's
// identity and the application-wide defaults (VAT rate, payment terms,
// penalty rate, PDF template).
type CompanySettings struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CompanyName         string `gorm:"size:255;not null;default:''" json:"company_name"`
	CompanyAddress      string `gorm:"type:text" json:"company_address"`
	CompanyRegistryCode string `gorm:"size:50" json:"company_registry_code"`
	CompanyVatNumber    string `gorm:"size:50" json:"company_vat_number"`
	CompanyPhone        string `gorm:"size:50" json:"company_phone"`
	CompanyEmail        string `gorm:"size:120" json:"company_email"`
	CompanyWebsite      string `gorm:"size:255" json:"company_website"`
	CompanyBank         string `gorm:"size:100" json:"company_bank"`
	CompanyBankAccount  string `gorm:"size:50" json:"company_bank_account"`

	// DefaultVatRate is the inline fallback used when no VatRate row is
	// referenced; it is the lowest-priority source of an invoice's
	// effective rate before zero.
	DefaultVatRate        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:24" json:"default_vat_rate"`
	DefaultVatRateID      *uuid.UUID      `gorm:"type:uuid" json:"default_vat_rate_id"`
	DefaultPaymentTermsID *uuid.UUID      `gorm:"type:uuid" json:"default_payment_terms_id"`
	DefaultPenaltyRateID  *uuid.UUID      `gorm:"type:uuid" json:"default_penalty_rate_id"`

	DefaultPdfTemplate string         `gorm:"size:20;not null;default:'standard'" json:"default_pdf_template"`
	TemplateLogos      datatypes.JSON `json:"template_logos"`
	InvoiceTerms       string         `gorm:"type:text" json:"invoice_terms"`
	MarketingMessages  string         `gorm:"type:text" json:"marketing_messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
