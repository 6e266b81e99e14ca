package controllers

import (
	"errors"
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateEnquiryController accepts a website enquiry on the legacy
// surface. These rows sit outside the C0-C3 pipeline until a staff
// member promotes them.
func (lc *LeadController) CreateEnquiryController(c *fiber.Ctx) error {
	var enquiry models.Enquiry
	if err := c.BodyParser(&enquiry); err != nil {
		config.Logger.Error("Invalid request body for CreateEnquiryController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if enquiry.CustomerName == "" || enquiry.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Customer name and phone are required",
		})
	}
	enquiry.Status = models.LegacyPending

	created, err := lc.EnquiryRepo.CreateEnquiry(&enquiry)
	if err != nil {
		config.Logger.Error("Failed to create enquiry", zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Enquiry received",
		"enquiry": created,
	})
}

// GetEnquiriesController lists legacy enquiries by status, pending by
// default.
func (lc *LeadController) GetEnquiriesController(c *fiber.Ctx) error {
	status := models.LegacyStatus(c.Query("status", string(models.LegacyPending)))

	enquiries, err := lc.EnquiryRepo.GetEnquiriesByStatus(status)
	if err != nil {
		config.Logger.Error("Failed to fetch enquiries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch enquiries",
		})
	}

	return c.JSON(fiber.Map{"enquiries": enquiries})
}

// PromoteEnquiryController converts a legacy enquiry into a pipeline
// lead. The enquiry's old status maps onto a stage; rejected enquiries
// have no pipeline position and cannot be promoted. The source row is
// marked approved so it stops showing up in the pending queue.
func (lc *LeadController) PromoteEnquiryController(c *fiber.Ctx) error {
	id := c.Params("id")

	enquiry, err := lc.EnquiryRepo.GetEnquiryByID(id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			config.Logger.Error("Failed to fetch enquiry", zap.String("enquiry_id", id), zap.Error(err))
		}
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stage, ok := models.LegacyStatusToStage(enquiry.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Enquiry with status %q cannot be promoted", enquiry.Status),
		})
	}

	lead := &models.Lead{
		CustomerName: enquiry.CustomerName,
		Phone:        enquiry.Phone,
		ModelName:    enquiry.ModelName,
	}
	if payload := middleware.AuthPayload(c); payload != nil {
		lead.CreatedBy = payload.Email
	}

	created, err := lc.Lifecycle.CreateLead(lead)
	if err != nil {
		config.Logger.Error("Failed to promote enquiry",
			zap.String("enquiry_id", id),
			zap.Error(err),
		)
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// New leads start at C0; an already-approved enquiry lands at C1.
	if stage != models.StageC0 {
		created.Status = stage
		if created, err = lc.LeadRepo.UpdateLead(created); err != nil {
			config.Logger.Error("Failed to set promoted lead stage",
				zap.String("lead_id", created.ID.String()),
				zap.Error(err),
			)
			return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	enquiry.Status = models.LegacyApproved
	if _, err := lc.EnquiryRepo.UpdateEnquiry(enquiry); err != nil {
		// The lead exists either way; a stale enquiry row is tolerable.
		config.Logger.Warn("Failed to mark enquiry as approved",
			zap.String("enquiry_id", id),
			zap.Error(err),
		)
	}

	if lc.SearchRepo != nil {
		if err := lc.SearchRepo.IndexSingleLead(*created); err != nil {
			config.Logger.Error("Error indexing promoted lead",
				zap.String("lead_id", created.ID.String()),
				zap.Error(err),
			)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Enquiry promoted to lead",
		"lead":    created,
	})
}
