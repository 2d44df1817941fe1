package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapengine/internal/logging"
	"snapengine/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeMerge(t *testing.T) {
	testCases := []struct {
		name      string
		a, b      DateRange
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "zero merges to other",
			a:         DateRange{},
			b:         DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 15)},
			wantStart: day(2024, 1, 15),
			wantEnd:   day(2024, 1, 15),
		},
		{
			name:      "widens both ends",
			a:         DateRange{Start: day(2024, 1, 16), End: day(2024, 1, 18)},
			b:         DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 20)},
			wantStart: day(2024, 1, 15),
			wantEnd:   day(2024, 1, 20),
		},
		{
			name:      "contained range changes nothing",
			a:         DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 20)},
			b:         DateRange{Start: day(2024, 1, 16), End: day(2024, 1, 17)},
			wantStart: day(2024, 1, 15),
			wantEnd:   day(2024, 1, 20),
		},
		{
			name:      "other zero changes nothing",
			a:         DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 20)},
			b:         DateRange{},
			wantStart: day(2024, 1, 15),
			wantEnd:   day(2024, 1, 20),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			merged := tc.a.Merge(tc.b)
			assert.Equal(t, tc.wantStart, merged.Start)
			assert.Equal(t, tc.wantEnd, merged.End)
		})
	}
}

func TestDateRangeLabel(t *testing.T) {
	dr := DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 20)}
	assert.Equal(t, "2024-01-15 to 2024-01-20", dr.Label())
	assert.Empty(t, DateRange{}.Label())
}

func stmtTx(date, desc, amount string, txType models.TransactionType) models.Transaction {
	return models.Transaction{
		Date:        date,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
	}
}

func TestBuildTotalsAndPeriod(t *testing.T) {
	b := NewBuilder(&logging.MockLogger{})

	txs := []models.Transaction{
		stmtTx("2024-01-15", "ACME PAYROLL", "1250.00", models.TypeIncome),
		stmtTx("2024-01-20", "SHOP RITE", "87.22", models.TypeExpense),
		stmtTx("2024-01-17", "RENT", "950.00", models.TypeExpense),
	}

	data := b.Build(txs, "")

	// Totals cover every transaction, countable or not.
	assert.Equal(t, "1250", data.TotalIncome.String())
	assert.Equal(t, "1037.22", data.TotalExpenses.String())
	assert.Equal(t, "2024-01-15 to 2024-01-20", data.Period)
	assert.Equal(t, "212.78", data.NetAmount().String())

	// Input order is preserved.
	require.Len(t, data.Transactions, 3)
	assert.Equal(t, "ACME PAYROLL", data.Transactions[0].Description)
}

func TestBuildExplicitPeriodWins(t *testing.T) {
	b := NewBuilder(&logging.MockLogger{})

	txs := []models.Transaction{
		stmtTx("2024-01-15", "X", "10.00", models.TypeExpense),
	}
	data := b.Build(txs, "2024-01-01 to 2024-01-31")
	assert.Equal(t, "2024-01-01 to 2024-01-31", data.Period)
}

func TestBuildSingleTransactionPeriod(t *testing.T) {
	b := NewBuilder(&logging.MockLogger{})

	txs := []models.Transaction{
		stmtTx("2024-01-15", "X", "10.00", models.TypeIncome),
	}
	data := b.Build(txs, "")
	assert.Equal(t, "2024-01-15 to 2024-01-15", data.Period)
}

func TestBuildEmptyInput(t *testing.T) {
	b := NewBuilder(&logging.MockLogger{})

	data := b.Build(nil, "")
	assert.Empty(t, data.Transactions)
	assert.True(t, data.TotalIncome.IsZero())
	assert.True(t, data.TotalExpenses.IsZero())
	assert.Empty(t, data.Period)
}

func TestBuildSkipsUnparseableDates(t *testing.T) {
	mock := &logging.MockLogger{}
	b := NewBuilder(mock)

	txs := []models.Transaction{
		stmtTx("2024-01-15", "GOOD", "10.00", models.TypeIncome),
		stmtTx("not-a-date", "BAD DATE", "5.00", models.TypeExpense),
	}
	data := b.Build(txs, "")

	// The bad date stays out of the period but its amount still counts.
	assert.Equal(t, "2024-01-15 to 2024-01-15", data.Period)
	assert.Equal(t, "5", data.TotalExpenses.String())
	assert.NotEmpty(t, mock.Entries)
}
