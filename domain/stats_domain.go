package domain

var (
	MessageSuccessGetStats = "success get study statistics"
	MessageFailedGetStats  = "failed to get study statistics"
)

type (
	VersionStats struct {
		Version          string  `json:"version"`
		Participants     int64   `json:"participants"`
		Completed        int64   `json:"completed"`
		CompletionRate   float64 `json:"completion_rate"`
		RatingCount      int64   `json:"rating_count"`
		AverageRating    float64 `json:"average_rating"`
		AvgUsability     float64 `json:"avg_usability"`
		AvgQuality       float64 `json:"avg_quality"`
		AvgTrust         float64 `json:"avg_trust"`
		AvgClarity       float64 `json:"avg_clarity"`
		AvgSustainImport float64 `json:"avg_sustainability_importance"`
		AvgSatisfaction  float64 `json:"avg_satisfaction"`
	}

	StudyStatsResponse struct {
		TotalParticipants      int64          `json:"total_participants"`
		CompletedParticipants  int64          `json:"completed_participants"`
		CompletionRate         float64        `json:"completion_rate"`
		TotalInteractions      int64          `json:"total_interactions"`
		AvgInteractionsPerUser float64        `json:"avg_interactions_per_user"`
		Versions               []VersionStats `json:"versions"`

		// PlaceholderRecall carries the legacy assumed-20%-relevant recall
		// figure. It has no statistical grounding and is reported only so
		// historical dashboards keep their column.
		PlaceholderRecall float64 `json:"placeholder_recall"`
	}
)
