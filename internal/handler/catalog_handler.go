package handler

import (
	"consult-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves products and the sitemap
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListProducts godoc
// @Summary List products
// @Description Filters by category and search query, then sorts. An empty result has empty=true.
// @Tags products
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "Category, or all"
// @Param sort query string false "featured, price-low, price-high, rating or new"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	resp, err := h.service.ListProducts(c.UserContext(), c.Query("q"), c.Query("category"), c.Query("sort"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListPages godoc
// @Summary List site pages
// @Description Filters the sitemap by section and search query
// @Tags sitemap
// @Produce json
// @Param q query string false "Search query"
// @Param section query string false "Section, or all"
// @Success 200 {object} dto.PageListResponse
// @Router /sitemap [get]
func (h *CatalogHandler) ListPages(c *fiber.Ctx) error {
	return c.JSON(h.service.ListPages(c.UserContext(), c.Query("q"), c.Query("section")))
}

// GetPage godoc
// @Summary Look up a page by route id
// @Tags sitemap
// @Produce json
// @Param route path string true "Route ID"
// @Success 200 {object} dto.PageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sitemap/{route} [get]
func (h *CatalogHandler) GetPage(c *fiber.Ctx) error {
	resp, err := h.service.GetPage(c.UserContext(), c.Params("route"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
