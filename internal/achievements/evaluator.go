package achievements

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Store is the slice of the travel history store the evaluator needs. The
// gorm achievement repository implements it inside the visit transaction, so
// a failed grant rolls the whole visit back.
type Store interface {
	// HeldBadges returns the names of badges the user already holds.
	HeldBadges(ctx context.Context, userID uuid.UUID) (map[string]bool, error)
	// GrantBadge inserts a grant if absent. Returns false when the badge was
	// already held (including a uniqueness conflict lost to a concurrent
	// request); that is success, not an error.
	GrantBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error)
}

// Counts are the user's current aggregate metrics, read inside the same
// transaction that appended the History row.
type Counts struct {
	UniqueCities int
	UniqueStates int
	GemsFound    int
	WildVisits   int
}

func (c Counts) value(m Metric) int {
	switch m {
	case MetricUniqueCities:
		return c.UniqueCities
	case MetricUniqueStates:
		return c.UniqueStates
	case MetricGemsFound:
		return c.GemsFound
	case MetricWildVisits:
		return c.WildVisits
	}
	return 0
}

type Evaluator struct {
	rules []Rule
}

func NewEvaluator(rules []Rule) *Evaluator {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Metric != ordered[j].Metric {
			return ordered[i].Metric < ordered[j].Metric
		}
		return ordered[i].Threshold < ordered[j].Threshold
	})
	return &Evaluator{rules: ordered}
}

// Evaluate grants every badge whose threshold the counts meet or exceed and
// that the user does not already hold. Grants are monotonic: nothing is ever
// revoked here regardless of how the counts move. Returns newly granted badge
// names in ascending threshold order per metric.
func (e *Evaluator) Evaluate(ctx context.Context, store Store, userID uuid.UUID, counts Counts) ([]string, error) {
	held, err := store.HeldBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unlocked []string
	for _, rule := range e.rules {
		if counts.value(rule.Metric) < rule.Threshold {
			continue
		}
		if held[rule.Badge] {
			continue
		}
		granted, err := store.GrantBadge(ctx, userID, rule.Badge)
		if err != nil {
			return nil, err
		}
		if granted {
			unlocked = append(unlocked, rule.Badge)
		}
	}
	return unlocked, nil
}
