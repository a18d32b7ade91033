package domain

var (
	MessageSuccessGetStudy = "success get study recommendations"
	MessageFailedGetStudy  = "failed to get study recommendations"
)

type (
	// RecommendedRecipe is the participant-facing card for one recommended
	// recipe. The assigned version never appears here; the only visible
	// difference between arms is the optional explanation text.
	RecommendedRecipe struct {
		RecipeID     int    `json:"recipe_id"`
		Title        string `json:"title"`
		Ingredients  string `json:"ingredients"`
		Instructions string `json:"instructions"`
		ImageURL     string `json:"image_url,omitempty"`
		Rank         int    `json:"rank"`
		Explanation  string `json:"explanation,omitempty"`
	}

	StudyResponse struct {
		Recipes []RecommendedRecipe `json:"recipes"`
		Total   int                 `json:"total"`
	}
)
