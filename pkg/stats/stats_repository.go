package stats

import (
	"context"

	"recipe-study-backend/entities"

	"gorm.io/gorm"
)

type (
	VersionCountRow struct {
		Version      string
		Participants int64
		Completed    int64
	}

	RatingRow struct {
		Version     string
		AvgRating   float64
		RatingCount int64
	}

	QuestionnaireRow struct {
		Version          string
		AvgUsability     float64
		AvgQuality       float64
		AvgTrust         float64
		AvgClarity       float64
		AvgSustainImport float64
		AvgSatisfaction  float64
	}

	StatsRepository interface {
		CountParticipants(ctx context.Context) (total int64, completed int64, err error)
		CountInteractions(ctx context.Context) (int64, error)
		VersionBreakdown(ctx context.Context) ([]VersionCountRow, error)
		RatingAverages(ctx context.Context) ([]RatingRow, error)
		QuestionnaireAverages(ctx context.Context) ([]QuestionnaireRow, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountParticipants(ctx context.Context) (int64, int64, error) {
	var total, completed int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Where("is_completed = ?", true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (r *statsRepository) CountInteractions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Interaction{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) VersionBreakdown(ctx context.Context) ([]VersionCountRow, error) {
	var rows []VersionCountRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Select("version, COUNT(*) AS participants, SUM(CASE WHEN is_completed THEN 1 ELSE 0 END) AS completed").
		Group("version").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) RatingAverages(ctx context.Context) ([]RatingRow, error) {
	var rows []RatingRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Interaction{}).
		Select("participants.version AS version, AVG(interactions.rating) AS avg_rating, COUNT(*) AS rating_count").
		Joins("JOIN participants ON participants.id = interactions.participant_id").
		Where("interactions.rating > 0").
		Group("participants.version").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) QuestionnaireAverages(ctx context.Context) ([]QuestionnaireRow, error) {
	var rows []QuestionnaireRow
	if err := r.db.WithContext(ctx).
		Model(&entities.QuestionnaireResponse{}).
		Select("participants.version AS version, " +
			"AVG(questionnaire_responses.system_usability) AS avg_usability, " +
			"AVG(questionnaire_responses.recommendation_quality) AS avg_quality, " +
			"AVG(questionnaire_responses.trust_level) AS avg_trust, " +
			"COALESCE(AVG(questionnaire_responses.explanation_clarity), 0) AS avg_clarity, " +
			"AVG(questionnaire_responses.sustainability_importance) AS avg_sustain_import, " +
			"AVG(questionnaire_responses.overall_satisfaction) AS avg_satisfaction").
		Joins("JOIN participants ON participants.id = questionnaire_responses.participant_id").
		Group("participants.version").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
