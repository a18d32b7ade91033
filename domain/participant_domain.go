package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "registration successful"
	MessageSuccessRateRecipe      = "rating recorded"
	MessageSuccessQuestionnaire   = "questionnaire submitted"
	MessageFailedRegister         = "registration failed"
	MessageFailedRateRecipe       = "failed to record rating"
	MessageFailedQuestionnaire    = "failed to submit questionnaire"
	MessageRegistrationFormFields = "fill in all required fields and consents to participate"

	ErrMissingDemographics    = errors.New("all demographic fields are required")
	ErrMissingConsent         = errors.New("mandatory consents must be accepted to proceed")
	ErrAwarenessOutOfRange    = errors.New("sustainability awareness must be between 1 and 5")
	ErrRatingOutOfRange       = errors.New("rating must be between 1 and 5")
	ErrMissingLikertAnswer    = errors.New("all required questionnaire answers must be provided")
	ErrAlreadyCompleted       = errors.New("questionnaire already submitted for this participant")
	ErrUnknownVersion         = errors.New("unknown study version")
)

type (
	RegisterRequest struct {
		AgeGroup                string `json:"age_group" form:"age_group" validate:"required"`
		Education               string `json:"education" form:"education" validate:"required"`
		CookingFrequency        string `json:"cooking_frequency" form:"cooking_frequency" validate:"required"`
		SustainabilityAwareness int    `json:"sustainability_awareness" form:"sustainability_awareness" validate:"required,min=1,max=5"`
		ConsentParticipation    bool   `json:"consent_participation" form:"consent_participation"`
		ConsentData             bool   `json:"consent_data" form:"consent_data"`
		ConsentPublication      bool   `json:"consent_publication" form:"consent_publication"`
		ConsentContact          bool   `json:"consent_contact" form:"consent_contact"`
	}

	RegisterResponse struct {
		ParticipantID string `json:"participant_id"`
	}

	RateRecipeRequest struct {
		RecipeID           int      `json:"recipe_id" validate:"required,min=1"`
		Rating             int      `json:"rating" validate:"required"`
		ExplanationHelpful *bool    `json:"explanation_helpful,omitempty"`
		ViewTimeSeconds    *float64 `json:"view_time_seconds,omitempty"`
		InteractionOrder   int      `json:"interaction_order,omitempty"`
	}

	QuestionnaireRequest struct {
		SystemUsability          int    `json:"system_usability" form:"system_usability" validate:"required,min=1,max=5"`
		RecommendationQuality    int    `json:"recommendation_quality" form:"recommendation_quality" validate:"required,min=1,max=5"`
		TrustLevel               int    `json:"trust_level" form:"trust_level" validate:"required,min=1,max=5"`
		ExplanationClarity       *int   `json:"explanation_clarity,omitempty" form:"explanation_clarity"`
		SustainabilityImportance int    `json:"sustainability_importance" form:"sustainability_importance" validate:"required,min=1,max=5"`
		OverallSatisfaction      int    `json:"overall_satisfaction" form:"overall_satisfaction" validate:"required,min=1,max=5"`
		AdditionalComments       string `json:"additional_comments" form:"additional_comments"`
	}
)
