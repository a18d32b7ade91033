package recommender

import (
	"strings"

	"recipe-study-backend/entities"
)

// Rationale thresholds are study configuration, fixed for the whole run.
const (
	compositeExcellent = 75.0
	compositeGood      = 65.0

	healthClauseMin    = 70.0
	envClauseMin       = 70.0
	popClauseMin       = 80.0
	compositeClauseMin = 75.0
)

// bandedExplanation is the short one-sentence rationale of the ranked arm,
// chosen by composite-score band.
func bandedExplanation(r entities.Recipe) string {
	switch {
	case r.Composite > compositeExcellent:
		return "This recipe has excellent ingredients and is well balanced."
	case r.Composite > compositeGood:
		return "A good choice with healthy and environmentally friendly ingredients."
	default:
		return "A traditional recipe, popular and well proven."
	}
}

// detailedExplanation builds the multi-clause rationale of the explained
// arm: one clause per score dimension over its threshold, in health,
// environment, popularity, summary order, with a single fallback clause
// when nothing qualifies.
func detailedExplanation(r entities.Recipe) string {
	var clauses []string
	if r.HealthScore > healthClauseMin {
		clauses = append(clauses, "Healthy: nutrient-rich ingredients with balanced macronutrients")
	}
	if r.EnvScore > envClauseMin {
		clauses = append(clauses, "Environmentally friendly: low carbon footprint, favours local produce")
	}
	if r.PopScore > popClauseMin {
		clauses = append(clauses, "Popular: widely liked and frequently cooked")
	}
	if r.Composite > compositeClauseMin {
		clauses = append(clauses, "Excellent choice: strong across all three criteria")
	}
	if len(clauses) == 0 {
		clauses = append(clauses, "A balanced recipe across every criterion")
	}
	return strings.Join(clauses, "; ") + "."
}
