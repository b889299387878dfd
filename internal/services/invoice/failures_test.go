package invoice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/services/status"
)

func validInput() Input {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return Input{
		ClientID: uuid.New(),
		Date:     date,
		DueDate:  date.AddDate(0, 0, 14),
		Lines: []LineInput{
			{Description: "Konsultatsioon", Qty: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("45.00")},
		},
	}
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	require.Nil(t, validate(validInput()))
}

func TestValidateFailures(t *testing.T) {
	rate101 := decimal.RequireFromString("101")
	negRate := decimal.RequireFromString("-1")

	tests := []struct {
		name     string
		mutate   func(*Input)
		wantKind string
	}{
		{"missing client", func(in *Input) { in.ClientID = uuid.Nil }, KindClientRequired},
		{"due date before date", func(in *Input) { in.DueDate = in.Date.AddDate(0, 0, -1) }, KindInvalidDueDate},
		{"zero qty", func(in *Input) { in.Lines[0].Qty = decimal.Zero }, KindInvalidQty},
		{"negative qty", func(in *Input) { in.Lines[0].Qty = decimal.NewFromInt(-1) }, KindInvalidQty},
		{"negative unit price", func(in *Input) { in.Lines[0].UnitPrice = decimal.RequireFromString("-0.01") }, KindInvalidUnitPrice},
		{"empty description", func(in *Input) { in.Lines[0].Description = "" }, KindDescriptionRequired},
		{"vat rate above 100", func(in *Input) { in.VatRate = &rate101 }, KindInvalidVatRate},
		{"negative vat rate", func(in *Input) { in.VatRate = &negRate }, KindInvalidVatRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			f := validate(in)
			require.NotNil(t, f)
			assert.Equal(t, tt.wantKind, f.Kind)
			assert.NotEmpty(t, f.Message, "failures carry a user-facing message")
		})
	}
}

func TestValidateAllowsDueDateEqualToDate(t *testing.T) {
	in := validInput()
	in.DueDate = in.Date
	assert.Nil(t, validate(in))
}

func TestValidateAllowsZeroUnitPrice(t *testing.T) {
	in := validInput()
	in.Lines[0].UnitPrice = decimal.Zero
	assert.Nil(t, validate(in))
}

func TestApplyStatusChangeDeniedBeforeAnyWrite(t *testing.T) {
	now := time.Now()
	inv := &models.Invoice{Status: models.StatusUnpaid}

	res, f := applyStatusChange(inv, "saadetud", now)
	require.Nil(t, res)
	require.NotNil(t, f)
	assert.Equal(t, string(status.KindInvalidStatus), f.Kind)
	assert.Equal(t, models.StatusUnpaid, inv.Status, "a rejected edit must leave the invoice untouched")
}

func TestApplyStatusChangeAppliesValidTransition(t *testing.T) {
	now := time.Now()
	inv := &models.Invoice{Status: models.StatusUnpaid}

	res, f := applyStatusChange(inv, models.StatusPaid, now)
	require.Nil(t, f)
	require.NotNil(t, res)
	assert.Equal(t, status.KindMarkedPaid, res.Kind)
	assert.Equal(t, models.StatusPaid, inv.Status)
}

func TestApplyStatusChangeIgnoresAbsentOrUnchangedStatus(t *testing.T) {
	now := time.Now()
	for _, requested := range []string{"", models.StatusUnpaid} {
		inv := &models.Invoice{Status: models.StatusUnpaid}
		res, f := applyStatusChange(inv, requested, now)
		assert.Nil(t, res)
		assert.Nil(t, f)
		assert.Equal(t, models.StatusUnpaid, inv.Status)
	}
}

func TestBuildLinesComputesTotals(t *testing.T) {
	lines := buildLines([]LineInput{
		{Description: "A", Qty: decimal.RequireFromString("1.33"), UnitPrice: decimal.RequireFromString("123.45")},
		{Description: "B", Qty: decimal.RequireFromString("2.67"), UnitPrice: decimal.RequireFromString("87.65")},
	})

	require.Len(t, lines, 2)
	assert.True(t, lines[0].LineTotal.Equal(decimal.RequireFromString("164.19")))
	assert.True(t, lines[1].LineTotal.Equal(decimal.RequireFromString("234.03")))
	assert.Equal(t, 0, lines[0].Position)
	assert.Equal(t, 1, lines[1].Position)
}
