package normalizer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapengine/internal/engineerror"
	"snapengine/internal/logging"
	"snapengine/internal/models"
)

func newTestNormalizer() (*Normalizer, *logging.MockLogger) {
	mock := &logging.MockLogger{}
	return New(mock), mock
}

func TestNormalizeDocumentExtracted(t *testing.T) {
	n, _ := newTestNormalizer()

	merchant := "Gusto"
	records := []RawRecord{
		{
			Date:        "01/15/2024",
			Description: "  ACME CORP PAYROLL  ",
			Amount:      json.Number("1250.00"),
			Type:        "income",
			// Enrichment on a document-extracted record is noise from the
			// extraction model and must not survive normalization.
			MerchantName: &merchant,
		},
		{
			Date:        "2024-01-17",
			Description: "SHOP RITE #114",
			Amount:      json.Number("-87.22"),
			Type:        "expense",
		},
	}

	txs, err := n.Normalize(records, ShapeDocumentExtracted)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-01-15", txs[0].Date)
	assert.Equal(t, "ACME CORP PAYROLL", txs[0].Description)
	assert.Equal(t, "1250", txs[0].Amount.String())
	assert.Equal(t, models.TypeIncome, txs[0].Type)
	assert.Equal(t, models.DirectionInflow, txs[0].Direction)
	assert.Equal(t, "USD", txs[0].ISOCurrencyCode)
	assert.Nil(t, txs[0].MerchantName)
	assert.False(t, txs[0].IsEnriched())

	// Sign conventions collapse into direction; the magnitude is kept.
	assert.Equal(t, "87.22", txs[1].Amount.String())
	assert.Equal(t, models.DirectionOutflow, txs[1].Direction)
}

func TestNormalizePartnerEnriched(t *testing.T) {
	n, _ := newTestNormalizer()

	merchant := "ConEd"
	channel := "online"
	records := []RawRecord{
		{
			ID:              "tx-001",
			DatePosted:      "2024-02-03",
			Description:     "CONED BILL PAY",
			Amount:          json.Number("112.40"),
			Direction:       "OUTFLOW",
			ISOCurrencyCode: "USD",
			MCC:             "4900",
			MerchantName:    &merchant,
			PaymentChannel:  &channel,
			PersonalFinanceCategory: &models.PersonalFinanceCategory{
				Primary:  "RENT_AND_UTILITIES",
				Detailed: "RENT_AND_UTILITIES_GAS_AND_ELECTRICITY",
			},
			Location:       &models.Location{City: "Brooklyn", Region: "NY"},
			Counterparties: []models.Counterparty{{Name: "ConEd", Type: "merchant"}},
		},
	}

	txs, err := n.Normalize(records, ShapePartnerEnriched)
	require.NoError(t, err)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, "tx-001", tx.ID)
	// No transaction date: posting date is the fallback.
	assert.Equal(t, "2024-02-03", tx.Date)
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, models.DirectionOutflow, tx.Direction)
	require.NotNil(t, tx.MerchantName)
	assert.Equal(t, "ConEd", *tx.MerchantName)
	require.NotNil(t, tx.PersonalFinanceCategory)
	assert.Equal(t, "RENT_AND_UTILITIES", tx.PersonalFinanceCategory.Primary)
	require.NotNil(t, tx.Location)
	assert.Equal(t, "Brooklyn", tx.Location.City)
	assert.True(t, tx.IsEnriched())
}

func TestNormalizeMalformedRecords(t *testing.T) {
	testCases := []struct {
		name   string
		record RawRecord
		field  string
	}{
		{
			name:   "missing description",
			record: RawRecord{Date: "2024-01-15", Amount: json.Number("10"), Type: "expense"},
			field:  "description",
		},
		{
			name:   "blank description",
			record: RawRecord{Date: "2024-01-15", Description: "   ", Amount: json.Number("10"), Type: "expense"},
			field:  "description",
		},
		{
			name:   "missing date",
			record: RawRecord{Description: "X", Amount: json.Number("10"), Type: "expense"},
			field:  "date",
		},
		{
			name:   "unparseable date",
			record: RawRecord{Date: "soon", Description: "X", Amount: json.Number("10"), Type: "expense"},
			field:  "date",
		},
		{
			name:   "missing amount",
			record: RawRecord{Date: "2024-01-15", Description: "X", Type: "expense"},
			field:  "amount",
		},
		{
			name:   "unparseable amount",
			record: RawRecord{Date: "2024-01-15", Description: "X", Amount: json.Number("ten"), Type: "expense"},
			field:  "amount",
		},
		{
			name:   "zero amount",
			record: RawRecord{Date: "2024-01-15", Description: "X", Amount: json.Number("0.00"), Type: "expense"},
			field:  "amount",
		},
		{
			name:   "unknown type",
			record: RawRecord{Date: "2024-01-15", Description: "X", Amount: json.Number("10"), Type: "debit"},
			field:  "type",
		},
		{
			name:   "unknown direction",
			record: RawRecord{Date: "2024-01-15", Description: "X", Amount: json.Number("10"), Direction: "SIDEWAYS"},
			field:  "direction",
		},
		{
			name:   "neither type nor direction",
			record: RawRecord{Date: "2024-01-15", Description: "X", Amount: json.Number("10")},
			field:  "type",
		},
		{
			name:   "type contradicts direction",
			record: RawRecord{Date: "2024-01-15", Description: "X", Amount: json.Number("10"), Type: "income", Direction: "OUTFLOW"},
			field:  "direction",
		},
	}

	n, _ := newTestNormalizer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.Normalize([]RawRecord{tc.record}, ShapeDocumentExtracted)
			require.Error(t, err)

			var recErrs *engineerror.RecordErrors
			require.True(t, errors.As(err, &recErrs))
			require.Len(t, recErrs.Errors, 1)
			assert.Equal(t, tc.field, recErrs.Errors[0].Field)
			assert.Equal(t, 0, recErrs.Errors[0].Index)
		})
	}
}

func TestNormalizeStrictIsAllOrNothing(t *testing.T) {
	n, _ := newTestNormalizer()

	records := []RawRecord{
		{Date: "2024-01-15", Description: "GOOD", Amount: json.Number("10"), Type: "expense"},
		{Date: "2024-01-16", Description: "", Amount: json.Number("20"), Type: "expense"},
	}

	txs, err := n.Normalize(records, ShapeDocumentExtracted)
	assert.Nil(t, txs)
	require.Error(t, err)
}

func TestNormalizeLenient(t *testing.T) {
	n, mock := newTestNormalizer()

	records := []RawRecord{
		{Date: "2024-01-15", Description: "FIRST", Amount: json.Number("10"), Type: "expense"},
		{Date: "garbage", Description: "BROKEN", Amount: json.Number("20"), Type: "expense"},
		{Date: "2024-01-17", Description: "THIRD", Amount: json.Number("30"), Type: "income"},
	}

	txs, recErrs, err := n.NormalizeLenient(records, ShapeDocumentExtracted)
	require.NoError(t, err)
	require.NotNil(t, recErrs)
	assert.Len(t, recErrs.Errors, 1)
	assert.Equal(t, 1, recErrs.Errors[0].Index)
	assert.Equal(t, 3, recErrs.Total)

	// Accepted records keep input order.
	require.Len(t, txs, 2)
	assert.Equal(t, "FIRST", txs[0].Description)
	assert.Equal(t, "THIRD", txs[1].Description)

	assert.NotEmpty(t, mock.Entries)
}

func TestNormalizeLenientCleanBatch(t *testing.T) {
	n, _ := newTestNormalizer()

	records := []RawRecord{
		{Date: "2024-01-15", Description: "ONLY", Amount: json.Number("10"), Type: "expense"},
	}

	txs, recErrs, err := n.NormalizeLenient(records, ShapeDocumentExtracted)
	require.NoError(t, err)
	assert.Nil(t, recErrs)
	assert.Len(t, txs, 1)
}

func TestNormalizeEmptyInput(t *testing.T) {
	n, _ := newTestNormalizer()

	_, err := n.Normalize(nil, ShapeDocumentExtracted)
	var emptyErr *engineerror.EmptyInputError
	require.True(t, errors.As(err, &emptyErr))
}

func TestNormalizeUnknownShape(t *testing.T) {
	n, _ := newTestNormalizer()

	records := []RawRecord{
		{Date: "2024-01-15", Description: "X", Amount: json.Number("10"), Type: "expense"},
	}
	_, err := n.Normalize(records, SourceShape("csv_upload"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv_upload")
}

func TestPartnerCSVRecordToRawRecord(t *testing.T) {
	row := PartnerCSVRecord{
		ID:              "tx-9",
		Description:     "NATIONAL GRID",
		Amount:          "54.10",
		Direction:       "OUTFLOW",
		ISOCurrencyCode: "USD",
		City:            "Albany",
		Region:          "NY",
		DatePosted:      "2024-03-02",
		MCC:             "4900",
	}

	raw := row.ToRawRecord()
	assert.Equal(t, "tx-9", raw.ID)
	assert.Equal(t, json.Number("54.10"), raw.Amount)
	require.NotNil(t, raw.Location)
	assert.Equal(t, "Albany", raw.Location.City)

	noCity := PartnerCSVRecord{ID: "tx-10", Description: "X", Amount: "1", Direction: "INFLOW", DatePosted: "2024-03-02"}
	assert.Nil(t, noCity.ToRawRecord().Location)
}
