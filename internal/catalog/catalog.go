package catalog

import (
	"fmt"

	"snapengine/internal/models"
)

// Catalog is an immutable, versioned snapshot of the rule set. It is loaded
// once per classification run; hot-reloading a new version never affects
// in-flight passes, since each run pins its own Catalog value.
type Catalog struct {
	version string
	// byTier holds the rules grouped by signal kind, preserving the catalog
	// order within each tier.
	byTier map[SignalKind][]*Rule
	count  int
}

// Match describes a winning rule lookup.
type Match struct {
	Rule   *Rule
	Signal SignalKind

	// Conflicting is true when another rule of the same signal tier matched
	// a different category with the same confidence, so neither outcome can
	// be trusted on its own.
	Conflicting bool
}

// New builds a Catalog from an ordered rule list. Rule order within a signal
// tier is match priority: first matching rule wins.
func New(version string, rules []Rule) (*Catalog, error) {
	if version == "" {
		return nil, fmt.Errorf("catalog version must not be empty")
	}
	c := &Catalog{
		version: version,
		byTier:  make(map[SignalKind][]*Rule, len(SignalPriority)),
	}
	for i := range rules {
		r := &rules[i]
		if err := validateRule(r); err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		c.byTier[r.Signal] = append(c.byTier[r.Signal], r)
		c.count++
	}
	return c, nil
}

func validateRule(r *Rule) error {
	switch r.Signal {
	case SignalCategory:
		if len(r.CategoryPrimary) == 0 && len(r.CategoryDetailed) == 0 {
			return fmt.Errorf("category rule needs category_primary or category_detailed")
		}
	case SignalMerchant, SignalDescription:
		if len(r.Keywords) == 0 {
			return fmt.Errorf("%s rule needs keywords", r.Signal)
		}
	default:
		return fmt.Errorf("unknown signal kind %q", r.Signal)
	}
	switch r.Direction {
	case DirectionIncome, DirectionExpense, DirectionEither:
	default:
		return fmt.Errorf("unknown direction %q", r.Direction)
	}
	switch r.Effect {
	case EffectCountable, EffectNotCountable, EffectReview:
	default:
		return fmt.Errorf("unknown effect %q", r.Effect)
	}
	switch r.Confidence {
	case models.ConfidenceHigh, models.ConfidenceMedium, models.ConfidenceLow:
	default:
		return fmt.Errorf("invalid base confidence %q", r.Confidence)
	}
	if r.Category == "" {
		return fmt.Errorf("rule needs a category label")
	}
	return nil
}

// Version returns the catalog's version tag, recorded on every run report.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return c.count
}

// Rules returns the rules of a signal tier in priority order. The returned
// slice must not be mutated.
func (c *Catalog) Rules(kind SignalKind) []*Rule {
	return c.byTier[kind]
}

// Lookup finds the winning rule for a transaction. Signal tiers are searched
// in reliability order and the first tier with any match decides the
// outcome; within a tier, rules direction-compatible with the transaction
// take precedence over conflicting-direction ones, so a direction mismatch
// is only reported when nothing compatible matched. Returns false when no
// rule matches at all.
func (c *Catalog) Lookup(tx *models.Transaction) (Match, bool) {
	for _, kind := range SignalPriority {
		rules := c.byTier[kind]
		if len(rules) == 0 {
			continue
		}

		var compatible, incompatible []*Rule
		for _, r := range rules {
			if !r.Matches(tx) {
				continue
			}
			if r.Direction.Compatible(tx.Type) {
				compatible = append(compatible, r)
			} else {
				incompatible = append(incompatible, r)
			}
		}

		if len(compatible) > 0 {
			return Match{
				Rule:        compatible[0],
				Signal:      kind,
				Conflicting: hasConflict(compatible),
			}, true
		}
		if len(incompatible) > 0 {
			// Direction mismatch: the caller decides what that means.
			return Match{
				Rule:   incompatible[0],
				Signal: kind,
			}, true
		}
	}
	return Match{}, false
}

// hasConflict reports whether the matches disagree: a rule other than the
// winner maps to a different category with the same confidence, leaving no
// principled way to pick between them.
func hasConflict(matched []*Rule) bool {
	winner := matched[0]
	for _, r := range matched[1:] {
		if r.Category != winner.Category && r.Confidence == winner.Confidence {
			return true
		}
	}
	return false
}
