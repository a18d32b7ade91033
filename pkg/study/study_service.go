package study

import (
	"context"
	"strings"
	"time"

	"recipe-study-backend/domain"
	"recipe-study-backend/entities"
	"recipe-study-backend/pkg/assignment"

	"github.com/google/uuid"
)

type (
	StudyService interface {
		RegisterParticipant(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		GetParticipant(ctx context.Context, participantID string) (*entities.Participant, error)
		RateRecipe(ctx context.Context, participantID string, req domain.RateRecipeRequest) error
		SubmitQuestionnaire(ctx context.Context, participantID string, req domain.QuestionnaireRequest) error
	}

	studyService struct {
		studyRepository StudyRepository
		assigner        assignment.VersionAssigner
	}
)

func NewStudyService(studyRepository StudyRepository, assigner assignment.VersionAssigner) StudyService {
	return &studyService{
		studyRepository: studyRepository,
		assigner:        assigner,
	}
}

// RegisterParticipant creates the participant row and draws the study arm.
// The arm is fixed here for the participant's whole lifetime; every later
// page view and log entry reads it back from the stored row.
func (s *studyService) RegisterParticipant(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if strings.TrimSpace(req.AgeGroup) == "" ||
		strings.TrimSpace(req.Education) == "" ||
		strings.TrimSpace(req.CookingFrequency) == "" {
		return domain.RegisterResponse{}, domain.ErrMissingDemographics
	}
	if !likertInRange(req.SustainabilityAwareness) {
		return domain.RegisterResponse{}, domain.ErrAwarenessOutOfRange
	}
	if !req.ConsentParticipation || !req.ConsentData || !req.ConsentPublication {
		return domain.RegisterResponse{}, domain.ErrMissingConsent
	}

	participant := entities.Participant{
		ID:                      uuid.New(),
		AgeGroup:                strings.TrimSpace(req.AgeGroup),
		Education:               strings.TrimSpace(req.Education),
		CookingFrequency:        strings.TrimSpace(req.CookingFrequency),
		SustainabilityAwareness: req.SustainabilityAwareness,
		ConsentParticipation:    req.ConsentParticipation,
		ConsentData:             req.ConsentData,
		ConsentPublication:      req.ConsentPublication,
		ConsentContact:          req.ConsentContact,
		Version:                 s.assigner.Assign(),
		CreatedAt:               time.Now(),
	}

	if err := s.studyRepository.CreateParticipant(ctx, &participant); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{ParticipantID: participant.ID.String()}, nil
}

func (s *studyService) GetParticipant(ctx context.Context, participantID string) (*entities.Participant, error) {
	if _, err := uuid.Parse(participantID); err != nil {
		return nil, domain.ErrParticipantNotFound
	}
	return s.studyRepository.GetParticipantByID(ctx, participantID)
}

// RateRecipe appends one interaction row. A participant rating the same
// recipe twice produces two rows; the log is append-only.
func (s *studyService) RateRecipe(ctx context.Context, participantID string, req domain.RateRecipeRequest) error {
	participant, err := s.GetParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	if !likertInRange(req.Rating) {
		return domain.ErrRatingOutOfRange
	}

	interaction := entities.Interaction{
		ID:                 uuid.New(),
		ParticipantID:      participant.ID,
		RecipeID:           req.RecipeID,
		Rating:             req.Rating,
		ExplanationHelpful: req.ExplanationHelpful,
		ViewTimeSeconds:    req.ViewTimeSeconds,
		InteractionOrder:   req.InteractionOrder,
		CreatedAt:          time.Now(),
	}
	return s.studyRepository.CreateInteraction(ctx, &interaction)
}

// SubmitQuestionnaire stores the closing questionnaire and marks the
// participant completed. Explanation clarity is only asked in the arms that
// show rationales; for the baseline arm the answer is dropped even if sent.
func (s *studyService) SubmitQuestionnaire(ctx context.Context, participantID string, req domain.QuestionnaireRequest) error {
	participant, err := s.GetParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	if participant.IsCompleted {
		return domain.ErrAlreadyCompleted
	}

	if !likertInRange(req.SystemUsability) ||
		!likertInRange(req.RecommendationQuality) ||
		!likertInRange(req.TrustLevel) ||
		!likertInRange(req.SustainabilityImportance) ||
		!likertInRange(req.OverallSatisfaction) {
		return domain.ErrMissingLikertAnswer
	}

	clarity := req.ExplanationClarity
	if participant.Version == domain.VersionBaseline {
		clarity = nil
	} else {
		if clarity == nil || !likertInRange(*clarity) {
			return domain.ErrMissingLikertAnswer
		}
	}

	questionnaire := entities.QuestionnaireResponse{
		ID:                       uuid.New(),
		ParticipantID:            participant.ID,
		SystemUsability:          req.SystemUsability,
		RecommendationQuality:    req.RecommendationQuality,
		TrustLevel:               req.TrustLevel,
		ExplanationClarity:       clarity,
		SustainabilityImportance: req.SustainabilityImportance,
		OverallSatisfaction:      req.OverallSatisfaction,
		AdditionalComments:       req.AdditionalComments,
		CreatedAt:                time.Now(),
	}
	return s.studyRepository.CreateQuestionnaire(ctx, &questionnaire)
}

func likertInRange(v int) bool {
	return v >= 1 && v <= 5
}
