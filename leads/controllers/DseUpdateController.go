package controllers

import (
	"errors"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	leads_services "dealership-backend/leads/services"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type dseUpdateRequest struct {
	Status  *models.LeadStage `json:"status"`
	Message string            `json:"message"`
}

// DseUpdateController records a field update against a lead. The actor
// comes from the auth token, never from the body.
func (lc *LeadController) DseUpdateController(c *fiber.Ctx) error {
	id := c.Params("id")

	payload := middleware.AuthPayload(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req dseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for DseUpdateController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	actor := leads_services.Actor{
		ID:    payload.UserID.String(),
		Name:  payload.Name,
		Email: payload.Email,
		Role:  payload.Role,
	}

	lead, err := lc.Lifecycle.ApplyDseUpdate(id, actor, req.Status, req.Message)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			config.Logger.Warn("DSE update rejected",
				zap.String("lead_id", id),
				zap.String("actor_id", actor.ID),
			)
		}
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if lc.SearchRepo != nil {
		if err := lc.SearchRepo.IndexSingleLead(*lead); err != nil {
			config.Logger.Error("Error re-indexing updated lead",
				zap.String("lead_id", lead.ID.String()),
				zap.Error(err),
			)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Lead updated",
		"lead":    lead,
	})
}
