package study

import (
	"context"
	"errors"

	"recipe-study-backend/domain"
	"recipe-study-backend/entities"

	"gorm.io/gorm"
)

type (
	StudyRepository interface {
		CreateParticipant(ctx context.Context, participant *entities.Participant) error
		GetParticipantByID(ctx context.Context, id string) (*entities.Participant, error)
		CreateInteraction(ctx context.Context, interaction *entities.Interaction) error
		CreateQuestionnaire(ctx context.Context, questionnaire *entities.QuestionnaireResponse) error
	}

	studyRepository struct {
		db *gorm.DB
	}
)

func NewStudyRepository(db *gorm.DB) StudyRepository {
	return &studyRepository{db: db}
}

func (r *studyRepository) CreateParticipant(ctx context.Context, participant *entities.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *studyRepository) GetParticipantByID(ctx context.Context, id string) (*entities.Participant, error) {
	var participant entities.Participant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

func (r *studyRepository) CreateInteraction(ctx context.Context, interaction *entities.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// CreateQuestionnaire inserts the questionnaire row and flips the
// participant's completed flag in one transaction. The guarded update
// serializes concurrent submissions for the same participant: only the
// first one flips the flag and writes a row.
func (r *studyRepository) CreateQuestionnaire(ctx context.Context, questionnaire *entities.QuestionnaireResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Participant{}).
			Where("id = ? AND is_completed = ?", questionnaire.ParticipantID, false).
			Update("is_completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyCompleted
		}
		return tx.Create(questionnaire).Error
	})
}
