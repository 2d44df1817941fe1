// Package summary derives portfolio-level totals and the statement period
// from a transaction list. Totals are computed over all transactions
// regardless of classification outcome; countability is the reviewer's
// concern, not the summary's.
package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"snapengine/internal/dateutils"
	"snapengine/internal/logging"
	"snapengine/internal/models"
)

// DateRange is an inclusive calendar range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Merge widens this range to cover another, treating zero times as unset.
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// Label renders the range as the human-readable period string, empty when
// the range is unset.
func (dr DateRange) Label() string {
	return dateutils.FormatRange(dr.Start, dr.End)
}

// Builder computes BankStatementData from a canonical transaction list. It
// is pure: a plain map/reduce over the input.
type Builder struct {
	logger logging.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Builder{logger: logger}
}

// Build assembles the statement result: the transactions in input order,
// totals summed by type over every transaction, and the period label. When
// the extraction source supplied an explicit period string it takes
// precedence over the derived range. Empty input yields zero totals and an
// empty period rather than failing.
func (b *Builder) Build(txs []models.Transaction, explicitPeriod string) models.BankStatementData {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	var span DateRange

	for i := range txs {
		switch txs[i].Type {
		case models.TypeIncome:
			totalIncome = totalIncome.Add(txs[i].Amount)
		case models.TypeExpense:
			totalExpenses = totalExpenses.Add(txs[i].Amount)
		}

		if t, _, err := dateutils.ParseDate(txs[i].Date); err == nil {
			span = span.Merge(DateRange{Start: t, End: t})
		} else {
			// Dates are canonical by the time they get here; an unparseable
			// one means a caller skipped normalization.
			b.logger.WithError(err).Warn("Skipping unparseable date in period derivation",
				logging.Field{Key: "date", Value: txs[i].Date})
		}
	}

	period := explicitPeriod
	if period == "" {
		period = span.Label()
	}

	return models.BankStatementData{
		Transactions:  txs,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Period:        period,
	}
}
