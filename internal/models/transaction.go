// Package models provides the data structures used throughout the engine.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction from the applicant's
// point of view. It is carried separately from the amount, which is always a
// non-negative magnitude.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// TransactionDirection mirrors the partner feed's INFLOW/OUTFLOW vocabulary.
// It is redundant with TransactionType on a well-formed record; the
// normalizer derives one from the other when only one is present.
type TransactionDirection string

const (
	DirectionInflow  TransactionDirection = "INFLOW"
	DirectionOutflow TransactionDirection = "OUTFLOW"
)

// TypeFromDirection maps a direction to the corresponding transaction type.
func TypeFromDirection(d TransactionDirection) TransactionType {
	if d == DirectionInflow {
		return TypeIncome
	}
	return TypeExpense
}

// DirectionFromType maps a transaction type to the corresponding direction.
func DirectionFromType(t TransactionType) TransactionDirection {
	if t == TypeIncome {
		return DirectionInflow
	}
	return DirectionOutflow
}

// PersonalFinanceCategory is the {primary, detailed} taxonomy pair supplied
// by the enrichment partner. It is the most reliable classification signal
// when present.
type PersonalFinanceCategory struct {
	Primary  string `json:"primary" yaml:"primary"`
	Detailed string `json:"detailed" yaml:"detailed"`
}

// Coordinates is a latitude/longitude pair from the enrichment source.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Location is the optional merchant location supplied by the partner feed.
type Location struct {
	Address     string       `json:"address,omitempty" yaml:"address,omitempty"`
	City        string       `json:"city,omitempty" yaml:"city,omitempty"`
	Region      string       `json:"region,omitempty" yaml:"region,omitempty"`
	Country     string       `json:"country,omitempty" yaml:"country,omitempty"`
	PostalCode  string       `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// Counterparty is a named party to the transaction as reported by the
// enrichment partner.
type Counterparty struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	EntityID string `json:"entity_id,omitempty" yaml:"entity_id,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
	LogoURL  string `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`
}

// Transaction is the canonical record every downstream component consumes,
// regardless of whether it originated from document extraction or the
// partner feed. Enrichment fields are pointers so "absent" stays distinct
// from "empty"; they are nil on document-extracted transactions.
//
// A Transaction is mutated only by the normalizer (which builds it) and the
// classifier (which sets SnapClassification exactly once per pass); it is
// otherwise immutable.
type Transaction struct {
	ID          string          `json:"id,omitempty"`
	Date        string          `json:"date"` // canonical ISO format YYYY-MM-DD
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // non-negative magnitude

	Type      TransactionType      `json:"type"`
	Direction TransactionDirection `json:"direction,omitempty"`

	ISOCurrencyCode string `json:"iso_currency_code,omitempty"`
	DatePosted      string `json:"date_posted,omitempty"`
	MCC             string `json:"mcc,omitempty"`

	MerchantName            *string                  `json:"merchant_name,omitempty"`
	LogoURL                 *string                  `json:"logo_url,omitempty"`
	Website                 *string                  `json:"website,omitempty"`
	EntityID                *string                  `json:"entity_id,omitempty"`
	PaymentChannel          *string                  `json:"payment_channel,omitempty"`
	PersonalFinanceCategory *PersonalFinanceCategory `json:"personal_finance_category,omitempty"`
	Location                *Location                `json:"location,omitempty"`
	Counterparties          []Counterparty           `json:"counterparties,omitempty"`

	// SnapClassification is absent until the classifier runs. "Not yet
	// classified" is distinct from NOT_COUNTABLE.
	SnapClassification *Classification `json:"snap_classification,omitempty"`
}

// IsEnriched returns true when the transaction carries any partner-feed
// enrichment signal.
func (t *Transaction) IsEnriched() bool {
	return t.MerchantName != nil || t.PersonalFinanceCategory != nil ||
		t.PaymentChannel != nil || len(t.Counterparties) > 0
}

// IsClassified returns true once a classification pass has produced a
// terminal state for this transaction.
func (t *Transaction) IsClassified() bool {
	return t.SnapClassification != nil
}
