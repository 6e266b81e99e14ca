package controllers

import (
	"errors"

	"dealership-backend/apperrors"
	"dealership-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type assignRequest struct {
	LeadID     string `json:"lead_id"`
	AssigneeID string `json:"assignee_id"`
}

// AssignLeadController hands a lead to a DSE. The lead is untouched
// when the assignee is missing or not DSE-capable.
func (lc *LeadController) AssignLeadController(c *fiber.Ctx) error {
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for AssignLeadController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.LeadID == "" || req.AssigneeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lead_id and assignee_id are required",
		})
	}

	lead, err := lc.Lifecycle.AssignLead(req.LeadID, req.AssigneeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidRole) {
			config.Logger.Error("Failed to assign lead",
				zap.String("lead_id", req.LeadID),
				zap.String("assignee_id", req.AssigneeID),
				zap.Error(err),
			)
		}
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	config.Logger.Info("Lead assigned",
		zap.String("lead_id", req.LeadID),
		zap.String("assignee_id", req.AssigneeID),
	)

	if lc.SearchRepo != nil {
		if err := lc.SearchRepo.IndexSingleLead(*lead); err != nil {
			config.Logger.Error("Error re-indexing assigned lead",
				zap.String("lead_id", lead.ID.String()),
				zap.Error(err),
			)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Lead assigned successfully",
		"lead":    lead,
	})
}
