// File: entities/recipe.go
package entities

// Recipe is one row of the study catalog. Rows are written once by the
// catalog seeder at startup and never updated afterwards.
type Recipe struct {
	RecipeID     int     `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	Title        string  `json:"title"`
	Ingredients  string  `gorm:"type:text" json:"ingredients"`
	Instructions string  `gorm:"type:text" json:"instructions"`
	ImageURL     string  `json:"image_url,omitempty"`
	HealthScore  float64 `json:"health_score"`
	EnvScore     float64 `json:"env_score"`
	PopScore     float64 `json:"pop_score"`
	Composite    float64 `json:"composite_score"`
}
