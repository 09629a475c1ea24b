package handlers

import (
	"strings"

	"acquiring/internal/middleware"
	"acquiring/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AssignFeeStructureRequest struct {
	FeeStructureID string `json:"fee_structure_id"`
	AssignedBy     string `json:"assigned_by"`
}

type AssignmentHandler struct {
	service AssignmentService
}

func NewAssignmentHandler(service AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

func (h *AssignmentHandler) AssignFeeStructure(c *fiber.Ctx) error {
	var req AssignFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if strings.TrimSpace(req.FeeStructureID) == "" {
		return response.ValidationFailed(c, []string{"fee_structure_id is required"})
	}
	if req.AssignedBy == "" {
		req.AssignedBy = middleware.OperatorFrom(c)
	}

	assignment, err := h.service.Assign(c.UserContext(), req.FeeStructureID, c.Params("merchantId"), req.AssignedBy)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Fee structure assigned successfully", assignment)
}

func (h *AssignmentHandler) GetEffectiveFeeStructure(c *fiber.Ctx) error {
	structure, err := h.service.EffectiveStructure(c.UserContext(), c.Params("merchantId"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Effective fee structure retrieved successfully", structure)
}

func (h *AssignmentHandler) GetAssignmentHistory(c *fiber.Ctx) error {
	history, err := h.service.History(c.UserContext(), c.Params("merchantId"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Assignment history retrieved successfully", history)
}
