package handlers

import (
	"strconv"

	"acquiring/internal/repositories"
	"acquiring/internal/services/feestructure"
	"acquiring/internal/utils/pagination"
	"acquiring/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type FeeStructureHandler struct {
	service FeeStructureService
}

func NewFeeStructureHandler(service FeeStructureService) *FeeStructureHandler {
	return &FeeStructureHandler{service: service}
}

// ValidateFeeStructure is a dry run: it always answers 200 with the
// validator result plus advisory tier warnings.
func (h *FeeStructureHandler) ValidateFeeStructure(c *fiber.Ctx) error {
	var input feestructure.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	res := h.service.Validate(input)
	return c.JSON(fiber.Map{
		"valid":    res.Valid,
		"errors":   res.Errors,
		"warnings": feestructure.TierWarnings(input),
	})
}

func (h *FeeStructureHandler) CreateFeeStructure(c *fiber.Ctx) error {
	var input feestructure.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	structure, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Fee structure created successfully", structure)
}

func (h *FeeStructureHandler) GetFeeStructure(c *fiber.Ctx) error {
	structure, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Fee structure retrieved successfully", structure)
}

func (h *FeeStructureHandler) ListFeeStructures(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	var filter repositories.FeeStructureFilter
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "active must be true or false")
		}
		filter.Active = &active
	}

	page, err := h.service.List(c.UserContext(), filter, p.Limit, p.Offset)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = page.Total
	return c.JSON(pagination.Response(p, page.Items))
}

func (h *FeeStructureHandler) UpdateFeeStructure(c *fiber.Ctx) error {
	var input feestructure.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	structure, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Fee structure updated successfully", structure)
}

func (h *FeeStructureHandler) ActivateFeeStructure(c *fiber.Ctx) error {
	structure, err := h.service.Activate(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Fee structure activated", structure)
}

func (h *FeeStructureHandler) DeactivateFeeStructure(c *fiber.Ctx) error {
	structure, err := h.service.Deactivate(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Fee structure deactivated", structure)
}
