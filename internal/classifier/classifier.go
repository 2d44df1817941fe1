// Package classifier implements the countability state machine. Each
// transaction is classified independently in a single pass against an
// immutable catalog snapshot: the function from (transaction, catalog) to
// classification is pure, which is what makes the pass over a whole
// statement embarrassingly parallel.
package classifier

import (
	"snapengine/internal/catalog"
	"snapengine/internal/engineerror"
	"snapengine/internal/logging"
	"snapengine/internal/models"
)

// DefaultHighThreshold is the confidence weight at or above which a
// countable rule match is accepted without review. The default admits
// medium-confidence matches, matching long-standing reviewer expectations;
// stricter programs can raise it to models.ConfidenceHigh.Weight().
const DefaultHighThreshold = 0.6

// Options tune the classifier. Zero values select the defaults.
type Options struct {
	// HighThreshold is the minimum confidence weight for a countable
	// outcome; matches below it are flagged for review.
	HighThreshold float64

	// WorkerCount caps the parallel classification workers. Zero means
	// runtime.NumCPU().
	WorkerCount int
}

// Classifier assigns each canonical transaction exactly one terminal state
// with an auditable rationale. It holds only the read-only catalog snapshot;
// no state is shared across transactions.
type Classifier struct {
	catalog       *catalog.Catalog
	logger        logging.Logger
	highThreshold float64
	workerCount   int
}

// New creates a Classifier pinned to one catalog snapshot.
func New(cat *catalog.Catalog, opts Options, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	threshold := opts.HighThreshold
	if threshold <= 0 {
		threshold = DefaultHighThreshold
	}
	return &Classifier{
		catalog:       cat,
		logger:        logger,
		highThreshold: threshold,
		workerCount:   opts.WorkerCount,
	}
}

// Classify runs the state machine for a single transaction. It never fails
// for "no match" or "ambiguous match", which are legitimate terminal states,
// only for a missing catalog.
func (c *Classifier) Classify(tx *models.Transaction) (models.Classification, error) {
	if c.catalog == nil {
		return models.Classification{}, &engineerror.CatalogUnavailableError{
			Reason: "classifier constructed without a catalog snapshot",
		}
	}

	match, found := c.catalog.Lookup(tx)
	if !found {
		// No signal at all: there is no basis for even a tentative claim, so
		// this defaults to NOT_COUNTABLE rather than review.
		return models.Classification{
			FinalState: models.StateNotCountable,
			ReasonCode: models.ReasonNoSignalMatch,
			Confidence: models.ConfidenceNone,
		}, nil
	}

	rule := match.Rule

	if !rule.Direction.Compatible(tx.Type) {
		// A category associated with the opposite direction matched. Never
		// silently reinterpret direction; a human decides.
		return models.Classification{
			FinalState: models.StateFlagForReview,
			Category:   rule.Category,
			ReasonCode: models.ReasonDirectionMismatch,
			RuleReason: rule.Reason,
			Confidence: rule.Confidence,
		}, nil
	}

	if match.Conflicting {
		return models.Classification{
			FinalState: models.StateFlagForReview,
			Category:   rule.Category,
			ReasonCode: models.ReasonConflictingSignals,
			RuleReason: rule.Reason,
			Confidence: rule.Confidence,
		}, nil
	}

	switch rule.Effect {
	case catalog.EffectNotCountable:
		return models.Classification{
			FinalState: models.StateNotCountable,
			Category:   rule.Category,
			ReasonCode: models.ReasonRuleMatch,
			RuleReason: rule.Reason,
			Confidence: rule.Confidence,
		}, nil

	case catalog.EffectReview:
		// Rule policy demands human adjudication regardless of confidence.
		return models.Classification{
			FinalState: models.StateFlagForReview,
			Category:   rule.Category,
			ReasonCode: models.ReasonRuleMatch,
			RuleReason: rule.Reason,
			Confidence: rule.Confidence,
		}, nil
	}

	if rule.Confidence.Weight() < c.highThreshold {
		return models.Classification{
			FinalState: models.StateFlagForReview,
			Category:   rule.Category,
			ReasonCode: models.ReasonLowConfidence,
			RuleReason: rule.Reason,
			Confidence: rule.Confidence,
		}, nil
	}

	cls := models.Classification{
		Category:   rule.Category,
		ReasonCode: models.ReasonRuleMatch,
		RuleReason: rule.Reason,
		Confidence: rule.Confidence,
	}
	if tx.Type == models.TypeIncome {
		cls.FinalState = models.StateCountableIncome
		cls.IncomeType = rule.IncomeType
	} else {
		cls.FinalState = models.StateCountableDeduction
		cls.DeductionType = rule.DeductionType
	}
	return cls, nil
}

// ClassifyAll classifies every transaction in the list, returning one
// classification per input in input order. Transactions do not interact, so
// large batches run on a worker pool; results are order-stable either way.
func (c *Classifier) ClassifyAll(txs []models.Transaction) ([]models.Classification, error) {
	if c.catalog == nil {
		return nil, &engineerror.CatalogUnavailableError{
			Reason: "classifier constructed without a catalog snapshot",
		}
	}
	return c.classifyBatch(txs), nil
}

// CatalogVersion returns the version of the pinned catalog snapshot.
func (c *Classifier) CatalogVersion() string {
	if c.catalog == nil {
		return ""
	}
	return c.catalog.Version()
}
