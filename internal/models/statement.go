package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The boundary contract expects plain JSON numbers for amounts, matching
	// what existing collaborators already consume.
	decimal.MarshalJSONWithoutQuotes = true
}

// BankStatementData is the top-level result returned to the caller: the
// normalized, classified transaction list in input order plus portfolio
// totals and the statement period.
//
// Totals are computed over ALL transactions of the matching type, not just
// countable ones: the summary reflects the raw statement, and countability
// stays a downstream concern for the reviewer.
type BankStatementData struct {
	Transactions  []Transaction   `json:"transactions"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Period        string          `json:"period"`
}

// NetAmount returns totalIncome - totalExpenses.
func (b BankStatementData) NetAmount() decimal.Decimal {
	return b.TotalIncome.Sub(b.TotalExpenses)
}

// ReviewCount returns the number of transactions flagged for human review.
func (b BankStatementData) ReviewCount() int {
	n := 0
	for i := range b.Transactions {
		if b.Transactions[i].SnapClassification != nil &&
			b.Transactions[i].SnapClassification.NeedsReview() {
			n++
		}
	}
	return n
}
