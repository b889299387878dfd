package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
	invoicesvc "invoicing-backend/internal/services/invoice"
	"invoicing-backend/internal/services/numbering"
	"invoicing-backend/internal/services/status"
	"invoicing-backend/internal/services/totals"
)

type InvoiceHandler struct {
	service  *invoicesvc.Service
	invoices *repository.InvoiceRepository
	settings *repository.SettingsRepository
	alloc    *numbering.Allocator
	log      zerolog.Logger
}

func NewInvoiceHandler(
	service *invoicesvc.Service,
	invoices *repository.InvoiceRepository,
	settings *repository.SettingsRepository,
	alloc *numbering.Allocator,
) *InvoiceHandler {
	return &InvoiceHandler{
		service:  service,
		invoices: invoices,
		settings: settings,
		alloc:    alloc,
		log:      logger.WithComponent("invoice-handler"),
	}
}

// invoiceResponse embeds the stored invoice and adds the fields that
// are always derived on read: the VAT amount (recomputed through the
// same rounding as the write path), the effective rate, and the
// dynamic overdue flag.
type invoiceResponse struct {
	*models.Invoice
	VatAmount        decimal.Decimal `json:"vat_amount"`
	EffectiveVatRate decimal.Decimal `json:"effective_vat_rate"`
	IsOverdue        bool            `json:"is_overdue"`
	StatusDisplay    string          `json:"status_display"`
	CanBeEdited      bool            `json:"can_be_edited"`
}

func (h *InvoiceHandler) present(inv *models.Invoice) (invoiceResponse, error) {
	defaultRate, err := h.settings.DefaultVatRate()
	if err != nil {
		return invoiceResponse{}, err
	}
	now := time.Now()
	rate := totals.EffectiveRate(inv, defaultRate)
	return invoiceResponse{
		Invoice:          inv,
		VatAmount:        totals.VatAmount(inv.Subtotal, rate),
		EffectiveVatRate: rate,
		IsOverdue:        inv.IsOverdue(now),
		StatusDisplay:    inv.StatusDisplay(now),
		CanBeEdited:      inv.CanBeEdited(),
	}, nil
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var in invoicesvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	inv, failure, err := h.service.Create(in)
	if err != nil {
		h.log.Error().Err(err).Msg("create invoice failed")
		respondInternalError(c)
		return
	}
	if failure != nil {
		respondFailure(c, failure.Kind, failure.Message)
		return
	}

	resp, err := h.present(inv)
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var clientID *uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(c, "invalid client_id")
			return
		}
		clientID = &id
	}

	invoices, err := h.invoices.List(c.Query("status"), clientID)
	if err != nil {
		h.log.Error().Err(err).Msg("list invoices failed")
		respondInternalError(c)
		return
	}

	responses := make([]invoiceResponse, 0, len(invoices))
	for i := range invoices {
		resp, err := h.present(&invoices[i])
		if err != nil {
			respondInternalError(c)
			return
		}
		responses = append(responses, resp)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid invoice id")
		return
	}

	inv, err := h.invoices.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}

	resp, err := h.present(inv)
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid invoice id")
		return
	}

	var in invoicesvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	inv, failure, err := h.service.Update(id, in)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("invoice_id", id.String()).Msg("update invoice failed")
		respondInternalError(c)
		return
	}
	if failure != nil {
		respondFailure(c, failure.Kind, failure.Message)
		return
	}

	resp, err := h.present(inv)
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid invoice id")
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStatus runs the status transition machine. Denied transitions
// come back as 422 with the machine kind and the Estonian message.
func (h *InvoiceHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid invoice id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	inv, res, err := h.service.ChangeStatus(id, body.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}
	if !res.Success {
		respondFailure(c, string(res.Kind), res.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"kind":    res.Kind,
		"message": res.Message,
		"status":  inv.Status,
	})
}

// NextNumber returns the next free invoice number for a year
// (?year=2025, defaults to the current year). The value is advisory:
// the create path allocates for real.
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "invalid year")
			return
		}
		year = parsed
	}

	number, err := h.alloc.Generate(year)
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": number})
}

// CheckNumber validates the format of a candidate number and reports
// whether it is still free.
func (h *InvoiceHandler) CheckNumber(c *gin.Context) {
	number := c.Query("number")
	valid := numbering.ValidateFormat(number)
	available := false
	if valid {
		var err error
		available, err = h.alloc.IsAvailable(number)
		if err != nil {
			respondInternalError(c)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid, "available": available})
}

// Overdue reports the dynamically-overdue invoices: past due date and
// still unpaid. Nothing is written; overdue is never a stored status.
func (h *InvoiceHandler) Overdue(c *gin.Context) {
	now := time.Now()
	invoices, err := h.invoices.ListOverdue(now)
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(invoices),
		"invoices": invoices,
	})
}

// Transitions lists the statuses reachable from the invoice's current
// status, for the edit form's status selector.
func (h *InvoiceHandler) Transitions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid invoice id")
		return
	}
	inv, err := h.invoices.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current":     inv.Status,
		"transitions": status.ValidTransitions(inv.Status),
	})
}
