package handler

import (
	"strings"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AssessmentHandler handles questionnaire and session requests
type AssessmentHandler struct {
	service service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// ListQuestionnaires godoc
// @Summary List questionnaires
// @Description Returns a summary of every questionnaire
// @Tags questionnaires
// @Produce json
// @Success 200 {array} dto.QuestionnaireSummaryResponse
// @Router /questionnaires [get]
func (h *AssessmentHandler) ListQuestionnaires(c *fiber.Ctx) error {
	return c.JSON(h.service.ListQuestionnaires(c.UserContext()))
}

// GetQuestionnaire godoc
// @Summary Get a questionnaire
// @Description Returns categories and items of a questionnaire. Option weights are not exposed.
// @Tags questionnaires
// @Produce json
// @Param id path string true "Questionnaire ID"
// @Success 200 {object} dto.QuestionnaireResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questionnaires/{id} [get]
func (h *AssessmentHandler) GetQuestionnaire(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestionnaire(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StartSession godoc
// @Summary Start an assessment session
// @Description Opens a session with an empty selection
// @Tags sessions
// @Produce json
// @Param id path string true "Questionnaire ID"
// @Success 201 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questionnaires/{id}/sessions [post]
func (h *AssessmentHandler) StartSession(c *fiber.Ctx) error {
	resp, err := h.service.StartSession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession godoc
// @Summary Get an assessment session
// @Description Returns the selection with overall and per-category scores
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid} [get]
func (h *AssessmentHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.service.GetSession(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCategoryScore godoc
// @Summary Score one category of a session
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Param cat path string true "Category ID"
// @Success 200 {object} dto.CategoryScoreResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/categories/{cat} [get]
func (h *AssessmentHandler) GetCategoryScore(c *fiber.Ctx) error {
	resp, err := h.service.CategoryScore(c.UserContext(), c.Params("sid"), c.Params("cat"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectOption godoc
// @Summary Answer a quiz question
// @Description Selects one option of a single-choice item, replacing any previous answer
// @Tags sessions
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body dto.SelectOptionRequest true "Selected option"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/select [post]
func (h *AssessmentHandler) SelectOption(c *fiber.Ctx) error {
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	var errs domain.ValidationErrors
	if strings.TrimSpace(req.ItemID) == "" {
		errs = append(errs, domain.NewMissingFieldError("item_id"))
	}
	if strings.TrimSpace(req.OptionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("option_id"))
	}
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SelectOption(c.UserContext(), c.Params("sid"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToggleItem godoc
// @Summary Check or uncheck a checklist item
// @Tags sessions
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body dto.ToggleItemRequest true "Toggle state"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/toggle [post]
func (h *AssessmentHandler) ToggleItem(c *fiber.Ctx) error {
	var req dto.ToggleItemRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if strings.TrimSpace(req.ItemID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("item_id")}
	}

	resp, err := h.service.ToggleItem(c.UserContext(), c.Params("sid"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Complete godoc
// @Summary Complete an assessment
// @Description Marks the session complete and switches the page to the results view
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/complete [post]
func (h *AssessmentHandler) Complete(c *fiber.Ctx) error {
	resp, err := h.service.Complete(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Reset an assessment
// @Description Clears every selection and the completed flag
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/reset [post]
func (h *AssessmentHandler) Reset(c *fiber.Ctx) error {
	resp, err := h.service.Reset(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetRecommendations godoc
// @Summary Get recommendations
// @Description Lists categories below the threshold in catalog order, with an optional advisor narrative
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/recommendations [get]
func (h *AssessmentHandler) GetRecommendations(c *fiber.Ctx) error {
	resp, err := h.service.Recommendations(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary Download assessment results
// @Description Returns the results as a JSON attachment
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} domain.AssessmentExport
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/export [get]
func (h *AssessmentHandler) Export(c *fiber.Ctx) error {
	export, filename, err := h.service.Export(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	c.Attachment(filename)
	return c.JSON(export)
}

// Share godoc
// @Summary Get share text
// @Description Returns the plain-text summary. A notice is set instead of failing when storage is down.
// @Tags sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.ShareResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sid}/share [get]
func (h *AssessmentHandler) Share(c *fiber.Ctx) error {
	resp, err := h.service.Share(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
