package catalog

import (
	"recipe-study-backend/entities"
)

// Composite score weights over the three per-recipe indices. The weights are
// study configuration, not a learned model.
const (
	envWeight    = 0.4
	healthWeight = 0.4
	popWeight    = 0.2
)

// CompositeScore blends the health, environmental and popularity indices
// into one value. Inputs in [0,100] always yield a result in [0,100].
func CompositeScore(health, env, pop float64) float64 {
	return env*envWeight + health*healthWeight + pop*popWeight
}

// Catalog is the read-only in-memory recipe table. It is built once at
// startup and never mutated afterwards, so it is safe to share across
// requests without locking.
type Catalog struct {
	recipes []entities.Recipe
	byID    map[int]entities.Recipe
}

func New(recipes []entities.Recipe) *Catalog {
	byID := make(map[int]entities.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.RecipeID] = r
	}
	return &Catalog{recipes: recipes, byID: byID}
}

func (c *Catalog) Size() int {
	return len(c.recipes)
}

// Recipes returns a copy of the catalog rows so callers can sort freely.
func (c *Catalog) Recipes() []entities.Recipe {
	out := make([]entities.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *Catalog) ByID(id int) (entities.Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}
