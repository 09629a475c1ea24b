package handlers

import (
	"acquiring/internal/utils/response"
	"acquiring/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PricingHandler struct {
	service PricingService
}

func NewPricingHandler(service PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

func (h *PricingHandler) PutPricingPlan(c *fiber.Ctx) error {
	var input validation.PricingPlanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	input.MerchantID = c.Params("merchantId")

	plan, err := h.service.Upsert(c.UserContext(), input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Pricing plan saved successfully", plan)
}

func (h *PricingHandler) GetPricingPlan(c *fiber.Ctx) error {
	plan, err := h.service.Get(c.UserContext(), c.Params("merchantId"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Pricing plan retrieved successfully", plan)
}
