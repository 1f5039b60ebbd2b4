package handler

import (
	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/service"
	"consult-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles shopping cart requests
type CartHandler struct {
	service   service.CartService
	validator *validation.Validator
}

// NewCartHandler creates a new CartHandler instance
func NewCartHandler(service service.CartService) *CartHandler {
	return &CartHandler{service: service, validator: validation.NewValidator()}
}

// CreateCart godoc
// @Summary Create a cart
// @Tags carts
// @Produce json
// @Success 201 {object} dto.CartResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) CreateCart(c *fiber.Ctx) error {
	resp, err := h.service.CreateCart(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetCart godoc
// @Summary Get a cart with totals
// @Tags carts
// @Produce json
// @Param cid path string true "Cart ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /carts/{cid} [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	resp, err := h.service.GetCart(c.UserContext(), c.Params("cid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddItem godoc
// @Summary Add a product to a cart
// @Description Adding a product already in the cart increases its quantity
// @Tags carts
// @Accept json
// @Produce json
// @Param cid path string true "Cart ID"
// @Param request body dto.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /carts/{cid}/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	errs := h.validator.ValidateSlug("product_id", req.ProductID)
	errs = append(errs, h.validator.ValidateQuantity(req.Quantity)...)
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.AddItem(c.UserContext(), c.Params("cid"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SetQuantity godoc
// @Summary Set a line quantity
// @Description A quantity of 0 removes the line
// @Tags carts
// @Accept json
// @Produce json
// @Param cid path string true "Cart ID"
// @Param pid path string true "Product ID"
// @Param request body dto.SetCartQuantityRequest true "New quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /carts/{cid}/items/{pid} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var req dto.SetCartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuantity(req.Quantity); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SetQuantity(c.UserContext(), c.Params("cid"), c.Params("pid"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RemoveItem godoc
// @Summary Remove a line from a cart
// @Tags carts
// @Produce json
// @Param cid path string true "Cart ID"
// @Param pid path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /carts/{cid}/items/{pid} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	resp, err := h.service.RemoveItem(c.UserContext(), c.Params("cid"), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ClearCart godoc
// @Summary Empty a cart
// @Tags carts
// @Produce json
// @Param cid path string true "Cart ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /carts/{cid} [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	resp, err := h.service.ClearCart(c.UserContext(), c.Params("cid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
