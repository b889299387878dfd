package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
)

var hundred = decimal.NewFromInt(100)

type SettingsHandler struct {
	settings *repository.SettingsRepository
	lookups  *repository.LookupRepository
}

func NewSettingsHandler(settings *repository.SettingsRepository, lookups *repository.LookupRepository) *SettingsHandler {
	return &SettingsHandler{settings: settings, lookups: lookups}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	current, err := h.settings.Get()
	if err != nil {
		respondInternalError(c)
		return
	}

	var incoming models.CompanySettings
	if err := c.ShouldBindJSON(&incoming); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	// The row is a singleton; identity and creation time stay.
	incoming.ID = current.ID
	incoming.CreatedAt = current.CreatedAt

	if incoming.DefaultVatRate.IsNegative() || incoming.DefaultVatRate.GreaterThan(hundred) {
		respondFailure(c, "invalid_vat_rate", "Käibemaksumäär peab olema vahemikus 0–100.")
		return
	}

	if err := h.settings.Save(&incoming); err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, incoming)
}

// PaymentTerms lists the active payment term choices for the invoice
// form.
func (h *SettingsHandler) PaymentTerms(c *gin.Context) {
	terms, err := h.lookups.ActivePaymentTerms()
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, terms)
}

// PenaltyRates lists the active late-fee rate choices.
func (h *SettingsHandler) PenaltyRates(c *gin.Context) {
	rates, err := h.lookups.ActivePenaltyRates()
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, rates)
}
