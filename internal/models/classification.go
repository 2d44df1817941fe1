package models

// FinalState is the terminal eligibility state assigned to a transaction.
// Exactly one value per transaction; never absent after classification runs.
type FinalState string

const (
	StateCountableIncome    FinalState = "COUNTABLE_INCOME"
	StateCountableDeduction FinalState = "COUNTABLE_DEDUCTION"
	StateFlagForReview      FinalState = "FLAG_FOR_REVIEW"
	StateNotCountable       FinalState = "NOT_COUNTABLE"
)

// AllFinalStates returns the four terminal states.
func AllFinalStates() []FinalState {
	return []FinalState{
		StateCountableIncome,
		StateCountableDeduction,
		StateFlagForReview,
		StateNotCountable,
	}
}

// IncomeType distinguishes earned from unearned countable income.
type IncomeType string

const (
	IncomeEarned   IncomeType = "EARNED_INCOME"
	IncomeUnearned IncomeType = "UNEARNED_INCOME"
)

// DeductionType names the SNAP deduction bucket a countable expense falls in.
type DeductionType string

const (
	DeductionShelter      DeductionType = "SHELTER"
	DeductionUtilities    DeductionType = "UTILITIES"
	DeductionMedical      DeductionType = "MEDICAL"
	DeductionChildcare    DeductionType = "CHILDCARE"
	DeductionChildSupport DeductionType = "CHILD_SUPPORT_PAID"
	DeductionNone         DeductionType = "NONE"
)

// ReasonCode is the stable identifier explaining why a classification
// outcome was reached. These values are part of the audit contract and must
// not be renamed.
type ReasonCode string

const (
	ReasonRuleMatch          ReasonCode = "RULE_MATCH"
	ReasonNoSignalMatch      ReasonCode = "NO_SIGNAL_MATCH"
	ReasonLowConfidence      ReasonCode = "LOW_CONFIDENCE"
	ReasonConflictingSignals ReasonCode = "CONFLICTING_SIGNALS"
	ReasonDirectionMismatch  ReasonCode = "DIRECTION_MISMATCH"
)

// Confidence is the ordinal strength of a rule match. The wire values match
// the review UI's vocabulary.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// Weight returns a numeric strength for threshold comparison. Only relative
// order matters; the values themselves are not part of any contract.
func (c Confidence) Weight() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.6
	case ConfidenceLow:
		return 0.3
	default:
		return 0.0
	}
}

// Classification is the result of the countability state machine for a
// single transaction. Produced exactly once per classification pass and
// immutable thereafter; a transaction may be re-classified only by
// re-running the full pass.
type Classification struct {
	FinalState    FinalState    `json:"final_state"`
	IncomeType    IncomeType    `json:"income_type,omitempty"`
	DeductionType DeductionType `json:"deduction_type,omitempty"`

	// Category is the matched rule-catalog label; present whenever a rule
	// matched, including low-confidence matches routed to review.
	Category string `json:"category,omitempty"`

	ReasonCode ReasonCode `json:"reason_code,omitempty"`

	// RuleReason carries the matched rule's own audit vocabulary (for
	// example SHELTER_COST or INTERNAL_TRANSFER), preserved for reviewers.
	RuleReason string `json:"rule_reason,omitempty"`

	Confidence Confidence `json:"confidence"`
}

// IsCountable returns true for the two countable terminal states.
func (c Classification) IsCountable() bool {
	return c.FinalState == StateCountableIncome || c.FinalState == StateCountableDeduction
}

// NeedsReview returns true when human adjudication is required.
func (c Classification) NeedsReview() bool {
	return c.FinalState == StateFlagForReview
}
