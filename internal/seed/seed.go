// Package seed installs the Estonian default reference data: VAT
// rates, payment terms and penalty rates.
package seed

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoicing-backend/internal/models"
)

func vatRates() []models.VatRate {
	return []models.VatRate{
		{ID: uuid.New(), Name: "Maksuvaba (0%)", Rate: decimal.NewFromInt(0), Description: "Käibemaksuvaba tooted ja teenused"},
		{ID: uuid.New(), Name: "Vähendatud määr (9%)", Rate: decimal.NewFromInt(9), Description: "Vähendatud käibemaksumäär"},
		{ID: uuid.New(), Name: "Vähendatud määr (20%)", Rate: decimal.NewFromInt(20), Description: "Vähendatud käibemaksumäär"},
		{ID: uuid.New(), Name: "Standardmäär (24%)", Rate: decimal.NewFromInt(24), Description: "Eesti standardne käibemaksumäär", IsDefault: true},
	}
}

func paymentTerms() []models.PaymentTerms {
	days := []int{0, 7, 14, 21, 30, 60, 90}
	terms := make([]models.PaymentTerms, 0, len(days))
	for _, d := range days {
		terms = append(terms, models.PaymentTerms{
			ID:        uuid.New(),
			Name:      paymentTermName(d),
			Days:      d,
			IsDefault: d == 14,
		})
	}
	return terms
}

func paymentTermName(days int) string {
	if days == 1 {
		return "1 päev"
	}
	return strconv.Itoa(days) + " päeva"
}

func penaltyRates() []models.PenaltyRate {
	return []models.PenaltyRate{
		{ID: uuid.New(), Name: "0% päevas", RatePerDay: decimal.Zero},
		{ID: uuid.New(), Name: "0,1% päevas", RatePerDay: decimal.RequireFromString("0.1")},
		{ID: uuid.New(), Name: "0,2% päevas", RatePerDay: decimal.RequireFromString("0.2")},
		{ID: uuid.New(), Name: "0,5% päevas", RatePerDay: decimal.RequireFromString("0.5"), IsDefault: true},
		{ID: uuid.New(), Name: "1% päevas", RatePerDay: decimal.RequireFromString("1")},
	}
}

// Defaults inserts the default reference rows, skipping any name that
// already exists.
func Defaults(db *gorm.DB) error {
	skipDuplicates := clause.OnConflict{DoNothing: true}

	rates := vatRates()
	if err := db.Clauses(skipDuplicates).Create(&rates).Error; err != nil {
		return err
	}
	terms := paymentTerms()
	if err := db.Clauses(skipDuplicates).Create(&terms).Error; err != nil {
		return err
	}
	penalties := penaltyRates()
	return db.Clauses(skipDuplicates).Create(&penalties).Error
}
