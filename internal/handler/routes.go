package handler

import (
	"consult-hub/internal/domain"
	"consult-hub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Assessment *AssessmentHandler
	Catalog    *CatalogHandler
	Cart       *CartHandler
	Support    *SupportHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the API under /api and the health check at /healthz.
func RegisterRoutes(app *fiber.App, h Handlers, tokens *middleware.TokenValidator) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)

	api := app.Group("/api")

	// Questionnaires and sessions
	api.Get("/questionnaires", h.Assessment.ListQuestionnaires)
	api.Get("/questionnaires/:id", vm.ValidateSlugParam("id"), h.Assessment.GetQuestionnaire)
	api.Post("/questionnaires/:id/sessions", vm.ValidateSlugParam("id"), h.Assessment.StartSession)

	sessions := api.Group("/sessions/:sid", vm.ValidateIDParam("sid"))
	sessions.Get("/", h.Assessment.GetSession)
	sessions.Get("/categories/:cat", vm.ValidateSlugParam("cat"), h.Assessment.GetCategoryScore)
	sessions.Post("/select", h.Assessment.SelectOption)
	sessions.Post("/toggle", h.Assessment.ToggleItem)
	sessions.Post("/complete", h.Assessment.Complete)
	sessions.Post("/reset", h.Assessment.Reset)
	sessions.Get("/recommendations", h.Assessment.GetRecommendations)
	sessions.Get("/export", h.Assessment.Export)
	sessions.Get("/share", h.Assessment.Share)

	// Catalog and navigation
	api.Get("/products", vm.ValidateCatalogQuery(), h.Catalog.ListProducts)
	api.Get("/sitemap", h.Catalog.ListPages)
	api.Get("/sitemap/:route", vm.ValidateSlugParam("route"), h.Catalog.GetPage)

	// Carts
	api.Post("/carts", h.Cart.CreateCart)
	carts := api.Group("/carts/:cid", vm.ValidateIDParam("cid"))
	carts.Get("/", h.Cart.GetCart)
	carts.Delete("/", h.Cart.ClearCart)
	carts.Post("/items", h.Cart.AddItem)
	carts.Put("/items/:pid", vm.ValidateSlugParam("pid"), h.Cart.SetQuantity)
	carts.Delete("/items/:pid", vm.ValidateSlugParam("pid"), h.Cart.RemoveItem)

	// Support
	api.Post("/support/tickets", h.Support.SubmitTicket)
	admin := api.Group("/admin", middleware.Protected(tokens))
	admin.Get("/tickets", vm.ValidatePagination(), h.Support.ListTickets)

	api.Use(func(c *fiber.Ctx) error {
		return domain.NewNotFoundError("No route for " + c.Method() + " " + c.Path())
	})
}
