// Package catalog holds the versioned knowledge base mapping transaction
// signals to SNAP countability outcomes. It is the single place where "which
// categories count" policy lives; the classifier consumes it read-only.
package catalog

import (
	"strings"

	"snapengine/internal/models"
)

// SignalKind identifies which transaction signal a rule matches on. Signals
// are evaluated in reliability order: the partner's enrichment category
// first, then merchant name, then free-text description as last resort.
type SignalKind string

const (
	SignalCategory    SignalKind = "category"
	SignalMerchant    SignalKind = "merchant"
	SignalDescription SignalKind = "description"
)

// SignalPriority is the evaluation order of signal kinds, most reliable
// first.
var SignalPriority = []SignalKind{SignalCategory, SignalMerchant, SignalDescription}

// Direction states which transaction type a rule's category is associated
// with. A rule matching a transaction of the opposite type is a direction
// conflict, never a silent reinterpretation.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
	DirectionEither  Direction = "either"
)

// Compatible reports whether the rule direction agrees with a transaction
// type.
func (d Direction) Compatible(t models.TransactionType) bool {
	switch d {
	case DirectionEither:
		return true
	case DirectionIncome:
		return t == models.TypeIncome
	case DirectionExpense:
		return t == models.TypeExpense
	}
	return false
}

// Effect is the countability outcome a rule stands for.
type Effect string

const (
	// EffectCountable marks the category as countable income or deduction,
	// depending on the transaction type.
	EffectCountable Effect = "countable"
	// EffectNotCountable marks the category as known but not countable
	// (transfers, refunds, debt payments).
	EffectNotCountable Effect = "not_countable"
	// EffectReview routes the category to human adjudication regardless of
	// confidence (e.g. medical deductions apply only to elderly or disabled
	// households).
	EffectReview Effect = "review"
)

// Rule is one entry of the catalog: a predicate over transaction signals
// plus the resulting category, type and base confidence. New signal kinds
// are added as new matcher variants, not subclasses.
type Rule struct {
	Name      string     `yaml:"name"`
	Signal    SignalKind `yaml:"signal"`
	Direction Direction  `yaml:"direction"`
	Effect    Effect     `yaml:"effect"`

	Category      string               `yaml:"category"`
	IncomeType    models.IncomeType    `yaml:"income_type,omitempty"`
	DeductionType models.DeductionType `yaml:"deduction_type,omitempty"`

	// Reason is the rule's own audit vocabulary, carried into the
	// classification's rule_reason for reviewers.
	Reason string `yaml:"reason"`

	Confidence models.Confidence `yaml:"confidence"`

	// Keywords are case-insensitive substrings matched against the merchant
	// name (SignalMerchant) or the description (SignalDescription).
	Keywords []string `yaml:"keywords,omitempty"`

	// CategoryPrimary/CategoryDetailed are substrings matched against the
	// enrichment taxonomy pair (SignalCategory). When both lists are set,
	// both must match.
	CategoryPrimary  []string `yaml:"category_primary,omitempty"`
	CategoryDetailed []string `yaml:"category_detailed,omitempty"`
}

// Matches evaluates the rule's predicate against the signals the transaction
// actually carries. A rule never matches through a signal the transaction
// does not have.
func (r *Rule) Matches(tx *models.Transaction) bool {
	switch r.Signal {
	case SignalCategory:
		return r.matchesCategory(tx.PersonalFinanceCategory)
	case SignalMerchant:
		return r.matchesMerchant(tx)
	case SignalDescription:
		return containsAny(tx.Description, r.Keywords)
	}
	return false
}

func (r *Rule) matchesCategory(pfc *models.PersonalFinanceCategory) bool {
	if pfc == nil {
		return false
	}
	primaryOK := len(r.CategoryPrimary) == 0 || containsAny(pfc.Primary, r.CategoryPrimary)
	detailedOK := len(r.CategoryDetailed) == 0 || containsAny(pfc.Detailed, r.CategoryDetailed)
	if len(r.CategoryPrimary) == 0 && len(r.CategoryDetailed) == 0 {
		return false
	}
	return primaryOK && detailedOK
}

func (r *Rule) matchesMerchant(tx *models.Transaction) bool {
	if tx.MerchantName != nil && containsAny(*tx.MerchantName, r.Keywords) {
		return true
	}
	// Counterparties are an equivalent merchant signal when the feed did not
	// collapse them into merchant_name.
	for i := range tx.Counterparties {
		if tx.Counterparties[i].Type == "merchant" && containsAny(tx.Counterparties[i].Name, r.Keywords) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	upper := strings.ToUpper(text)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(k)) {
			return true
		}
	}
	return false
}
