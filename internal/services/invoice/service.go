// Package invoice implements the create/edit workflow around the
// invoice aggregate: it validates input, applies line mutations,
// recalculates totals and drives status transitions, all inside one
// database transaction per request.
package invoice

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/money"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/numbering"
	"invoicing-backend/internal/services/status"
	"invoicing-backend/internal/services/totals"
)

// maxAllocAttempts bounds the retry loop that resolves concurrent
// number allocation through the unique index on invoices.number.
const maxAllocAttempts = 5

// ErrNumberExhausted is returned when allocation keeps colliding after
// the retry budget is spent.
var ErrNumberExhausted = errors.New("invoice number allocation kept colliding")

type Service struct {
	db       *gorm.DB
	invoices *repository.InvoiceRepository
	vatRates *repository.VatRateRepository
	settings *repository.SettingsRepository
	lookups  *repository.LookupRepository
	alloc    *numbering.Allocator
	log      zerolog.Logger
}

func NewService(
	db *gorm.DB,
	invoices *repository.InvoiceRepository,
	vatRates *repository.VatRateRepository,
	settings *repository.SettingsRepository,
	lookups *repository.LookupRepository,
	alloc *numbering.Allocator,
) *Service {
	return &Service{
		db:       db,
		invoices: invoices,
		vatRates: vatRates,
		settings: settings,
		lookups:  lookups,
		alloc:    alloc,
		log:      logger.WithComponent("invoice-service"),
	}
}

// LineInput is one requested line. A nil ID means insert; a known ID
// means update. Existing lines missing from the request are removed.
type LineInput struct {
	ID          *uuid.UUID      `json:"id"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Input carries the already-deserialized values of a create or edit
// request. Number is honored on create only and may be empty, in which
// case the allocator assigns one.
type Input struct {
	ClientID        uuid.UUID        `json:"client_id"`
	Number          string           `json:"number"`
	Date            time.Time        `json:"date"`
	DueDate         time.Time        `json:"due_date"`
	VatRateID       *uuid.UUID       `json:"vat_rate_id"`
	VatRate         *decimal.Decimal `json:"vat_rate"`
	PaymentTerms    string           `json:"payment_terms"`
	ClientExtraInfo string           `json:"client_extra_info"`
	Note            string           `json:"note"`
	Announcements   string           `json:"announcements"`
	PdfTemplate     string           `json:"pdf_template"`
	Lines           []LineInput      `json:"lines"`
	Status          string           `json:"status"`
}

// Create allocates a number, builds the invoice with its lines,
// recalculates totals and persists everything atomically. A business
// failure comes back as a Failure value, infrastructure problems as an
// error.
func (s *Service) Create(in Input) (*models.Invoice, *Failure, error) {
	if f := validate(in); f != nil {
		return nil, f, nil
	}

	vatRateObj, f, err := s.resolveVatRate(in.VatRateID)
	if f != nil || err != nil {
		return nil, f, err
	}

	defaultRate, err := s.settings.DefaultVatRate()
	if err != nil {
		return nil, nil, err
	}

	paymentTerms := in.PaymentTerms
	if paymentTerms == "" {
		if term, err := s.lookups.DefaultPaymentTerms(); err == nil && term != nil {
			paymentTerms = term.Name
		}
	}

	inv := &models.Invoice{
		ID:              uuid.New(),
		ClientID:        in.ClientID,
		Date:            in.Date,
		DueDate:         in.DueDate,
		VatRateID:       in.VatRateID,
		VatRateObj:      vatRateObj,
		Status:          models.StatusUnpaid,
		PaymentTerms:    paymentTerms,
		ClientExtraInfo: in.ClientExtraInfo,
		Note:            in.Note,
		Announcements:   in.Announcements,
		PdfTemplate:     in.PdfTemplate,
		Lines:           buildLines(in.Lines),
	}
	inv.VatRate = decimal.NullDecimal{Decimal: money.FromPtr(in.VatRate), Valid: in.VatRate != nil}
	for i := range inv.Lines {
		inv.Lines[i].InvoiceID = inv.ID
	}

	totals.Recalculate(inv, defaultRate)

	if in.Number != "" {
		if f := s.checkExplicitNumber(in.Number); f != nil {
			return nil, f, nil
		}
		inv.Number = in.Number
		if err := s.insert(inv); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, failure(KindNumberTaken), nil
			}
			return nil, nil, err
		}
		return inv, nil, nil
	}

	// Recompute the candidate each attempt: a collision means someone
	// else just took it.
	year := in.Date.Year()
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		number, err := s.alloc.Generate(year)
		if err != nil {
			return nil, nil, err
		}
		inv.Number = number
		err = s.insert(inv)
		if err == nil {
			s.log.Info().Str("number", inv.Number).Msg("invoice created")
			return inv, nil, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, err
		}
	}
	return nil, nil, ErrNumberExhausted
}

func (s *Service) insert(inv *models.Invoice) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Lines are part of the aggregate and inserted with it; the
		// referenced VAT rate and client already exist.
		return tx.Omit("VatRateObj", "Client").Create(inv).Error
	})
}

// Update applies line mutations and field changes to an editable
// invoice, then recalculates totals, in a single transaction. Paid
// invoices are locked.
func (s *Service) Update(id uuid.UUID, in Input) (*models.Invoice, *Failure, error) {
	inv, err := s.invoices.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if !inv.CanBeEdited() {
		return nil, failure(KindPaidLocked), nil
	}
	if f := validate(in); f != nil {
		return nil, f, nil
	}

	vatRateObj, f, err := s.resolveVatRate(in.VatRateID)
	if f != nil || err != nil {
		return nil, f, err
	}

	defaultRate, err := s.settings.DefaultVatRate()
	if err != nil {
		return nil, nil, err
	}

	// A denied status change rejects the whole edit before anything is
	// written; field and line changes never land without it.
	previousStatus := inv.Status
	transition, f := applyStatusChange(inv, in.Status, time.Now())
	if f != nil {
		return nil, f, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		kept := make(map[uuid.UUID]bool, len(in.Lines))
		existing := make(map[uuid.UUID]*models.InvoiceLine, len(inv.Lines))
		for i := range inv.Lines {
			existing[inv.Lines[i].ID] = &inv.Lines[i]
		}

		lines := make([]models.InvoiceLine, 0, len(in.Lines))
		for pos, li := range in.Lines {
			if li.ID != nil {
				if prev, ok := existing[*li.ID]; ok {
					prev.Position = pos
					prev.Description = li.Description
					prev.Qty = li.Qty
					prev.UnitPrice = li.UnitPrice
					prev.LineTotal = totals.LineTotal(li.Qty, li.UnitPrice)
					if err := tx.Save(prev).Error; err != nil {
						return err
					}
					kept[prev.ID] = true
					lines = append(lines, *prev)
					continue
				}
			}
			line := models.InvoiceLine{
				ID:          uuid.New(),
				InvoiceID:   inv.ID,
				Position:    pos,
				Description: li.Description,
				Qty:         li.Qty,
				UnitPrice:   li.UnitPrice,
				LineTotal:   totals.LineTotal(li.Qty, li.UnitPrice),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			kept[line.ID] = true
			lines = append(lines, line)
		}

		for lineID := range existing {
			if !kept[lineID] {
				if err := tx.Delete(&models.InvoiceLine{}, "id = ?", lineID).Error; err != nil {
					return err
				}
			}
		}

		inv.ClientID = in.ClientID
		inv.Date = in.Date
		inv.DueDate = in.DueDate
		inv.VatRateID = in.VatRateID
		inv.VatRateObj = vatRateObj
		inv.VatRate = decimal.NullDecimal{Decimal: money.FromPtr(in.VatRate), Valid: in.VatRate != nil}
		inv.PaymentTerms = in.PaymentTerms
		inv.ClientExtraInfo = in.ClientExtraInfo
		inv.Note = in.Note
		inv.Announcements = in.Announcements
		if in.PdfTemplate != "" {
			inv.PdfTemplate = in.PdfTemplate
		}

		// Line mutations are applied to inv.Lines before recalculation;
		// recalculating against the pre-edit line set is exactly the
		// stale-totals bug this ordering exists to prevent.
		inv.Lines = lines
		totals.Recalculate(inv, defaultRate)

		if err := tx.Omit("Lines", "VatRateObj", "Client").Save(inv).Error; err != nil {
			return err
		}
		if transition != nil {
			return s.auditStatusChange(tx, inv, previousStatus, *transition)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return inv, nil, nil
}

// applyStatusChange runs the transition machine when an edit request
// carries a status change. On denial the invoice is left untouched and
// the machine's verdict comes back as a business failure.
func applyStatusChange(inv *models.Invoice, requested string, now time.Time) (*status.Result, *Failure) {
	if requested == "" || requested == inv.Status {
		return nil, nil
	}
	res := status.Transition(inv, requested, now)
	if !res.Success {
		return nil, &Failure{Kind: string(res.Kind), Message: res.Message}
	}
	return &res, nil
}

// ChangeStatus runs the transition state machine against the invoice
// and, on success, persists the new status and an audit row.
func (s *Service) ChangeStatus(id uuid.UUID, newStatus string) (*models.Invoice, status.Result, error) {
	inv, err := s.invoices.GetByID(id)
	if err != nil {
		return nil, status.Result{}, err
	}

	previous := inv.Status
	res := status.Transition(inv, newStatus, time.Now())
	if !res.Success {
		return inv, res, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Invoice{}).
			Where("id = ?", inv.ID).
			Updates(map[string]interface{}{
				"status":     inv.Status,
				"updated_at": inv.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		return s.auditStatusChange(tx, inv, previous, res)
	})
	if err != nil {
		return nil, status.Result{}, err
	}

	s.log.Info().
		Str("number", inv.Number).
		Str("from", previous).
		Str("to", inv.Status).
		Msg("invoice status changed")
	return inv, res, nil
}

// auditStatusChange appends the audit trail row for a committed status
// change, inside the caller's transaction.
func (s *Service) auditStatusChange(tx *gorm.DB, inv *models.Invoice, previous string, res status.Result) error {
	details, _ := json.Marshal(map[string]interface{}{
		"previous_status": previous,
		"new_status":      inv.Status,
		"message":         res.Message,
	})
	return tx.Create(&models.StatusAuditLog{
		ID:             uuid.New(),
		InvoiceID:      inv.ID,
		PreviousStatus: previous,
		NewStatus:      inv.Status,
		Kind:           string(res.Kind),
		Details:        details,
		CreatedAt:      time.Now(),
	}).Error
}

// Delete removes an invoice and its lines.
func (s *Service) Delete(id uuid.UUID) error {
	return s.invoices.Delete(id)
}

func (s *Service) resolveVatRate(id *uuid.UUID) (*models.VatRate, *Failure, error) {
	if id == nil {
		return nil, nil, nil
	}
	rate, err := s.vatRates.GetByID(*id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, failure(KindVatRateNotFound), nil
	}
	if err != nil {
		return nil, nil, err
	}
	if !rate.RateValid() {
		return nil, failure(KindInvalidVatRate), nil
	}
	return rate, nil, nil
}

func (s *Service) checkExplicitNumber(number string) *Failure {
	if !numbering.ValidateFormat(number) {
		return failure(KindInvalidNumberFormat)
	}
	available, err := s.alloc.IsAvailable(number)
	if err != nil || !available {
		// The unique index is the real guard; treat lookup errors as
		// taken and let the insert decide.
		return failure(KindNumberTaken)
	}
	return nil
}

func buildLines(inputs []LineInput) []models.InvoiceLine {
	lines := make([]models.InvoiceLine, 0, len(inputs))
	for pos, li := range inputs {
		lines = append(lines, models.InvoiceLine{
			ID:          uuid.New(),
			Position:    pos,
			Description: li.Description,
			Qty:         li.Qty,
			UnitPrice:   li.UnitPrice,
			LineTotal:   totals.LineTotal(li.Qty, li.UnitPrice),
		})
	}
	return lines
}
