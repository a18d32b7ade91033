package recommender

import (
	"sort"

	"recipe-study-backend/domain"
	"recipe-study-backend/entities"
	"recipe-study-backend/pkg/catalog"
)

// Every arm shows at most five recipes per study page.
const MaxRecommendations = 5

type (
	Recommender interface {
		GetRecommendations(version string) ([]domain.RecommendedRecipe, error)
	}

	// strategy is one study arm: how it ranks the catalog and what rationale
	// text, if any, it attaches.
	strategy struct {
		less    func(a, b entities.Recipe) bool
		explain func(r entities.Recipe) string
	}

	recommender struct {
		catalog    *catalog.Catalog
		strategies map[string]strategy
	}
)

func NewRecommender(c *catalog.Catalog) Recommender {
	return &recommender{
		catalog: c,
		strategies: map[string]strategy{
			domain.VersionBaseline:  {less: byPopularity, explain: nil},
			domain.VersionRanked:    {less: byComposite, explain: bandedExplanation},
			domain.VersionExplained: {less: byComposite, explain: detailedExplanation},
		},
	}
}

// GetRecommendations returns the ordered study page for one arm: exactly
// min(5, catalog size) recipes, each tagged with its 1-based presentation
// rank. An empty catalog yields an empty page, not an error.
func (s *recommender) GetRecommendations(version string) ([]domain.RecommendedRecipe, error) {
	strat, ok := s.strategies[version]
	if !ok {
		return nil, domain.ErrUnknownVersion
	}

	recipes := s.catalog.Recipes()
	sort.Slice(recipes, func(i, j int) bool {
		return strat.less(recipes[i], recipes[j])
	})

	limit := MaxRecommendations
	if len(recipes) < limit {
		limit = len(recipes)
	}

	out := make([]domain.RecommendedRecipe, 0, limit)
	for i := 0; i < limit; i++ {
		r := recipes[i]
		card := domain.RecommendedRecipe{
			RecipeID:     r.RecipeID,
			Title:        r.Title,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
			ImageURL:     r.ImageURL,
			Rank:         i + 1,
		}
		if strat.explain != nil {
			card.Explanation = strat.explain(r)
		}
		out = append(out, card)
	}
	return out, nil
}

// Ties break on ascending recipe id so the page is stable for a fixed
// catalog.
func byPopularity(a, b entities.Recipe) bool {
	if a.PopScore != b.PopScore {
		return a.PopScore > b.PopScore
	}
	return a.RecipeID < b.RecipeID
}

func byComposite(a, b entities.Recipe) bool {
	if a.Composite != b.Composite {
		return a.Composite > b.Composite
	}
	return a.RecipeID < b.RecipeID
}
