package achievements

// Metric names an aggregate computed from the user's travel history.
type Metric string

const (
	MetricUniqueCities Metric = "unique_cities"
	MetricUniqueStates Metric = "unique_states"
	MetricGemsFound    Metric = "gems_found"
	MetricWildVisits   Metric = "wild_visits"
)

// Rule maps a metric threshold to exactly one badge. Grants fire on
// threshold-or-greater, never on exact equality only, so counts that jump past
// a threshold in one update (bulk imports, concurrent visits) still grant.
type Rule struct {
	Metric    Metric
	Threshold int
	Badge     string
}

// DefaultRules is the canonical rule set. Thresholds per metric are ascending;
// the evaluator relies on that ordering.
func DefaultRules() []Rule {
	return []Rule{
		{MetricUniqueCities, 10, "Tourist I"},
		{MetricUniqueCities, 20, "Tourist II"},
		{MetricUniqueCities, 50, "Tourist III"},
		{MetricUniqueCities, 100, "Tourist IV"},
		{MetricUniqueCities, 500, "Tourist V"},

		{MetricUniqueStates, 3, "Explorer I"},
		{MetricUniqueStates, 5, "Explorer II"},
		{MetricUniqueStates, 10, "Explorer III"},
		{MetricUniqueStates, 20, "Explorer IV"},
		{MetricUniqueStates, 50, "Explorer V"},

		{MetricGemsFound, 1, "Gem Hunter I"},
		{MetricGemsFound, 5, "Gem Hunter II"},
		{MetricGemsFound, 20, "Gem Hunter III"},
		{MetricGemsFound, 50, "Gem Hunter IV"},
		{MetricGemsFound, 100, "Gem Hunter V"},

		{MetricWildVisits, 1, "In The Wild"},
	}
}
