package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
)

type VatRateHandler struct {
	vatRates *repository.VatRateRepository
}

func NewVatRateHandler(vatRates *repository.VatRateRepository) *VatRateHandler {
	return &VatRateHandler{vatRates: vatRates}
}

type vatRateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
	IsActive    *bool           `json:"is_active"`
}

func (h *VatRateHandler) List(c *gin.Context) {
	rates, err := h.vatRates.Active()
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *VatRateHandler) Create(c *gin.Context) {
	var req vatRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	rate := &models.VatRate{
		ID:          uuid.New(),
		Name:        req.Name,
		Rate:        req.Rate,
		Description: req.Description,
		IsActive:    true,
	}
	if !rate.RateValid() {
		respondFailure(c, "invalid_vat_rate", "Käibemaksumäär peab olema vahemikus 0–100.")
		return
	}
	if err := h.vatRates.Create(rate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondFailure(c, "vat_rate_exists", "Sellise nimega käibemaksumäär on juba olemas.")
			return
		}
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (h *VatRateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid vat rate id")
		return
	}
	rate, err := h.vatRates.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}

	var req vatRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	rate.Name = req.Name
	rate.Rate = req.Rate
	rate.Description = req.Description
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}
	if !rate.RateValid() {
		respondFailure(c, "invalid_vat_rate", "Käibemaksumäär peab olema vahemikus 0–100.")
		return
	}
	if err := h.vatRates.Save(rate); err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// SetDefault makes one rate the application default. The repository
// unsets the previous holder in the same transaction, so there is
// never more than one default row.
func (h *VatRateHandler) SetDefault(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid vat rate id")
		return
	}
	if _, err := h.vatRates.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	} else if err != nil {
		respondInternalError(c)
		return
	}
	if err := h.vatRates.SetDefault(id); err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *VatRateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid vat rate id")
		return
	}
	if err := h.vatRates.Delete(id); err != nil {
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
