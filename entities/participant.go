package entities

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AgeGroup                 string    `json:"age_group"`
	Education                string    `json:"education"`
	CookingFrequency         string    `json:"cooking_frequency"`
	SustainabilityAwareness  int       `json:"sustainability_awareness"`
	ConsentParticipation     bool      `json:"consent_participation"`
	ConsentData              bool      `json:"consent_data"`
	ConsentPublication       bool      `json:"consent_publication"`
	ConsentContact           bool      `json:"consent_contact"`
	Version                  string    `json:"version"`
	IsCompleted              bool      `json:"is_completed"`
	CreatedAt                time.Time `gorm:"type:timestamp" json:"created_at"`
}

type Interaction struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ParticipantID      uuid.UUID `json:"participant_id"`
	RecipeID           int       `json:"recipe_id"`
	Rating             int       `json:"rating"`
	ExplanationHelpful *bool     `json:"explanation_helpful,omitempty"`
	ViewTimeSeconds    *float64  `json:"view_time_seconds,omitempty"`
	InteractionOrder   int       `json:"interaction_order"`
	CreatedAt          time.Time `gorm:"type:timestamp" json:"created_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID"`
	Recipe      *Recipe      `gorm:"foreignKey:RecipeID"`
}

type QuestionnaireResponse struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ParticipantID            uuid.UUID `gorm:"uniqueIndex" json:"participant_id"`
	SystemUsability          int       `json:"system_usability"`
	RecommendationQuality    int       `json:"recommendation_quality"`
	TrustLevel               int       `json:"trust_level"`
	ExplanationClarity       *int      `json:"explanation_clarity,omitempty"`
	SustainabilityImportance int       `json:"sustainability_importance"`
	OverallSatisfaction      int       `json:"overall_satisfaction"`
	AdditionalComments       string    `gorm:"type:text" json:"additional_comments"`
	CreatedAt                time.Time `gorm:"type:timestamp" json:"created_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID"`
}
