// Package routes defines the API routing configuration.
package routes

import (
	"acquiring/internal/handlers"
	"acquiring/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every HTTP handler the service exposes.
type Handlers struct {
	Health        *handlers.HealthHandler
	FeeStructures *handlers.FeeStructureHandler
	Assignments   *handlers.AssignmentHandler
	Pricing       *handlers.PricingHandler
	Quotes        *handlers.QuoteHandler
}

// SetupRoutes registers the health and metrics endpoints at the root and the
// fee API under /api/v1.
func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1", middleware.Operator)

	setupFeeStructureRoutes(api, h.FeeStructures)
	setupMerchantRoutes(api, h)
}

func setupFeeStructureRoutes(router fiber.Router, h *handlers.FeeStructureHandler) {
	structures := router.Group("/fee-structures")
	structures.Post("/validate", h.ValidateFeeStructure)
	structures.Post("", h.CreateFeeStructure)
	structures.Get("", h.ListFeeStructures)
	structures.Get("/:id", h.GetFeeStructure)
	structures.Put("/:id", h.UpdateFeeStructure)
	structures.Post("/:id/activate", h.ActivateFeeStructure)
	structures.Post("/:id/deactivate", h.DeactivateFeeStructure)
}

func setupMerchantRoutes(router fiber.Router, h Handlers) {
	merchant := router.Group("/merchants/:merchantId")

	merchant.Post("/fee-structure", h.Assignments.AssignFeeStructure)
	merchant.Get("/fee-structure", h.Assignments.GetEffectiveFeeStructure)
	merchant.Get("/fee-structure/history", h.Assignments.GetAssignmentHistory)

	merchant.Put("/pricing-plan", h.Pricing.PutPricingPlan)
	merchant.Get("/pricing-plan", h.Pricing.GetPricingPlan)

	merchant.Post("/fee-quotes", h.Quotes.CreateQuote)
	merchant.Get("/fee-quotes", h.Quotes.ListQuotes)
}
