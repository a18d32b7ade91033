package handlers

import (
	"errors"

	"recipe-study-backend/domain"
	"recipe-study-backend/internal/api/presenters"
	"recipe-study-backend/internal/middleware"
	"recipe-study-backend/pkg/recommender"
	"recipe-study-backend/pkg/study"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type (
	StudyHandler interface {
		Welcome(c *fiber.Ctx) error
		RegisterForm(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		Instructions(c *fiber.Ctx) error
		Study(c *fiber.Ctx) error
		RateRecipe(c *fiber.Ctx) error
		QuestionnaireForm(c *fiber.Ctx) error
		SubmitQuestionnaire(c *fiber.Ctx) error
		ThankYou(c *fiber.Ctx) error
	}

	studyHandler struct {
		studyService       study.StudyService
		recommenderService recommender.Recommender
		validator          *validator.Validate
		sessions           *session.Store
	}
)

func NewStudyHandler(
	studyService study.StudyService,
	recommenderService recommender.Recommender,
	validator *validator.Validate,
	sessions *session.Store,
) StudyHandler {
	return &studyHandler{
		studyService:       studyService,
		recommenderService: recommenderService,
		validator:          validator,
		sessions:           sessions,
	}
}

func (h *studyHandler) Welcome(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"study":    "recipe recommendation user study",
		"register": "/register",
	}, fiber.StatusOK, "welcome")
}

func (h *studyHandler) RegisterForm(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"required_fields":    []string{"age_group", "education", "cooking_frequency", "sustainability_awareness"},
		"required_consents":  []string{"consent_participation", "consent_data", "consent_publication"},
		"optional_consents":  []string{"consent_contact"},
	}, fiber.StatusOK, domain.MessageRegistrationFormFields)
}

func (h *studyHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.studyService.RegisterParticipant(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingDemographics) ||
			errors.Is(err, domain.ErrMissingConsent) ||
			errors.Is(err, domain.ErrAwarenessOutOfRange) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}
	sess.Set(middleware.SessionParticipantKey, res.ParticipantID)
	if err := sess.Save(); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"participant_id": res.ParticipantID,
		"next":           "/instructions",
	}, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *studyHandler) Instructions(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"instructions": "You will see five recipes. Please look at each one, rate how much you would like to cook it, then fill in the closing questionnaire.",
		"next":         "/study",
	}, fiber.StatusOK, "study instructions")
}

// Study serves the recommendation page for the participant's assigned arm.
// The arm label itself is never part of the response.
func (h *studyHandler) Study(c *fiber.Ctx) error {
	participantID := c.Locals(middleware.SessionParticipantKey).(string)

	participant, err := h.studyService.GetParticipant(c.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStudy, err)
	}

	recipes, err := h.recommenderService.GetRecommendations(participant.Version)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStudy, err)
	}

	return presenters.SuccessResponse(c, domain.StudyResponse{
		Recipes: recipes,
		Total:   len(recipes),
	}, fiber.StatusOK, domain.MessageSuccessGetStudy)
}

func (h *studyHandler) RateRecipe(c *fiber.Ctx) error {
	participantID := c.Locals(middleware.SessionParticipantKey).(string)
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	if err := h.studyService.RateRecipe(c.Context(), participantID, *req); err != nil {
		switch {
		case errors.Is(err, domain.ErrParticipantNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRateRecipe, err)
		case errors.Is(err, domain.ErrRatingOutOfRange):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

// QuestionnaireForm tells the client which answers the closing form needs.
// The clarity question only appears for the arms that showed explanations;
// the response still carries no arm label.
func (h *studyHandler) QuestionnaireForm(c *fiber.Ctx) error {
	participantID := c.Locals(middleware.SessionParticipantKey).(string)

	participant, err := h.studyService.GetParticipant(c.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedQuestionnaire, err)
	}

	fields := []string{"system_usability", "recommendation_quality", "trust_level", "sustainability_importance", "overall_satisfaction"}
	if participant.Version != domain.VersionBaseline {
		fields = append(fields, "explanation_clarity")
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"required_fields": fields,
		"optional_fields": []string{"additional_comments"},
	}, fiber.StatusOK, "closing questionnaire")
}

func (h *studyHandler) SubmitQuestionnaire(c *fiber.Ctx) error {
	participantID := c.Locals(middleware.SessionParticipantKey).(string)
	req := new(domain.QuestionnaireRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuestionnaire, err)
	}

	if err := h.studyService.SubmitQuestionnaire(c.Context(), participantID, *req); err != nil {
		switch {
		case errors.Is(err, domain.ErrParticipantNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedQuestionnaire, err)
		case errors.Is(err, domain.ErrMissingLikertAnswer):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuestionnaire, err)
		case errors.Is(err, domain.ErrAlreadyCompleted):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedQuestionnaire, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedQuestionnaire, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"next": "/thank_you",
	}, fiber.StatusOK, domain.MessageSuccessQuestionnaire)
}

func (h *studyHandler) ThankYou(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"thanks": "Thank you for taking part in the study. Your answers have been recorded.",
	}, fiber.StatusOK, "study complete")
}
