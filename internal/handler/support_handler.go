package handler

import (
	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/logger"
	"consult-hub/internal/middleware"
	"consult-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SupportHandler handles contact-form submissions and the staff ticket list
type SupportHandler struct {
	service service.SupportService
}

// NewSupportHandler creates a new SupportHandler instance
func NewSupportHandler(service service.SupportService) *SupportHandler {
	return &SupportHandler{service: service}
}

// SubmitTicket godoc
// @Summary Submit a support ticket
// @Description Validates the contact form and stores a ticket. The response carries the SUP- ticket number.
// @Tags support
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} dto.CreateTicketResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /support/tickets [post]
func (h *SupportHandler) SubmitTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SubmitTicket(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTickets godoc
// @Summary List support tickets
// @Description Newest first. Staff only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} dto.TicketListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/tickets [get]
func (h *SupportHandler) ListTickets(c *fiber.Ctx) error {
	limit, _ := c.Locals(middleware.ValidatedLimitKey).(int)
	offset, _ := c.Locals(middleware.ValidatedOffsetKey).(int)
	if limit == 0 {
		limit = middleware.DefaultPageSize
	}

	resp, err := h.service.ListTickets(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}

	staffID, _ := c.Locals(middleware.StaffIDKey).(string)
	logger.Get().Debug("Tickets listed", zap.String("staff_id", staffID), zap.Int("count", len(resp.Tickets)))
	return c.JSON(resp)
}
