package controllers

import (
	"errors"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	costing_repositories "dealership-backend/costing/repositories"
	"dealership-backend/costing/requests"
	costing_services "dealership-backend/costing/services"
	leads_repositories "dealership-backend/leads/repositories"
	leads_tasks "dealership-backend/leads/tasks"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// CostingController manages dealer-internal costing sheets. Derived
// fields are always recomputed here; whatever the client supplied for
// them is ignored.
type CostingController struct {
	CostingRepo costing_repositories.CostingRepository
	LeadRepo    leads_repositories.LeadRepository
	AsynqClient *asynq.Client
}

// publishFinalized announces that a costing write committed. The lead
// transition happens in the task consumer; failure to enqueue is logged
// and left to the reconciliation sweep.
func (cc *CostingController) publishFinalized(leadID, costingID string) {
	task, err := leads_tasks.NewCostingFinalizedTask(leadID, costingID)
	if err != nil {
		config.Logger.Error("Failed to build costing finalized task",
			zap.String("lead_id", leadID), zap.Error(err))
		return
	}
	if _, err := cc.AsynqClient.Enqueue(task); err != nil {
		config.Logger.Error("Failed to enqueue costing finalized task",
			zap.String("lead_id", leadID), zap.Error(err))
	}
}

// CreateCostingController creates the costing sheet for a lead.
func (cc *CostingController) CreateCostingController(c *fiber.Ctx) error {
	var req requests.CostingRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for CreateCostingController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.LeadID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lead_id is required",
		})
	}

	lead, err := cc.LeadRepo.GetLeadByID(req.LeadID)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	costing := models.InternalCosting{LeadID: lead.ID}
	req.ApplyTo(&costing)
	costing_services.ApplyDerived(&costing)

	if payload := middleware.AuthPayload(c); payload != nil {
		costing.CreatedBy = payload.Email
	}

	created, err := cc.CostingRepo.CreateCosting(&costing)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			config.Logger.Error("Failed to create costing",
				zap.String("lead_id", req.LeadID), zap.Error(err))
		}
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cc.publishFinalized(lead.ID.String(), created.ID.String())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Costing created",
		"costing": created,
	})
}

// UpdateCostingController merges a (possibly partial) payload over the
// stored sheet and recomputes the derived fields.
func (cc *CostingController) UpdateCostingController(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid costing id",
		})
	}

	var req requests.CostingRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for UpdateCostingController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	costing, err := cc.CostingRepo.GetCostingByID(id)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	req.ApplyTo(costing)
	costing_services.ApplyDerived(costing)

	if payload := middleware.AuthPayload(c); payload != nil {
		costing.UpdatedBy = &payload.Email
	}

	updated, err := cc.CostingRepo.UpdateCosting(costing)
	if err != nil {
		config.Logger.Error("Failed to update costing", zap.String("costing_id", id), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cc.publishFinalized(updated.LeadID.String(), updated.ID.String())

	return c.JSON(fiber.Map{
		"message": "Costing updated",
		"costing": updated,
	})
}

// GetCostingByLeadController returns the sheet for a lead.
func (cc *CostingController) GetCostingByLeadController(c *fiber.Ctx) error {
	leadID := c.Params("leadId")

	costing, err := cc.CostingRepo.GetCostingByLeadID(leadID)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"costing": costing})
}
