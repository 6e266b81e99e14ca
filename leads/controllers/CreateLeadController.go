package controllers

import (
	"errors"
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateLeadController handles quote-submission lead creation. The new
// lead always starts at C0 regardless of what the client sent.
func (lc *LeadController) CreateLeadController(c *fiber.Ctx) error {
	var lead models.Lead
	if err := c.BodyParser(&lead); err != nil {
		config.Logger.Error("Invalid request body for CreateLeadController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := lc.Lifecycle.CreateLead(&lead)
	if err != nil {
		config.Logger.Error("Failed to create lead",
			zap.String("customer", lead.CustomerName),
			zap.Error(err),
		)
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Acknowledgement goes out in the background; a dead SMTP server
	// must not fail the create.
	if created.Email != nil && *created.Email != "" {
		lc.Mailer.SendAsync(*created.Email,
			fmt.Sprintf("Hi %s, thank you for your enquiry about the %s. Our sales team will reach out shortly.",
				created.CustomerName, created.ModelName),
			"We received your enquiry")
	}
	if lc.SMS != nil {
		lc.SMS.SendAsync(created.Phone,
			fmt.Sprintf("Thank you for your enquiry about the %s. Our team will contact you shortly.", created.ModelName))
	}

	if lc.SearchRepo != nil {
		if err := lc.SearchRepo.IndexSingleLead(*created); err != nil {
			config.Logger.Error("Error indexing new lead",
				zap.String("lead_id", created.ID.String()),
				zap.Error(err),
			)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lead created successfully",
		"lead":    created,
	})
}

// GetLeadController returns one lead with its audit trail.
func (lc *LeadController) GetLeadController(c *fiber.Ctx) error {
	id := c.Params("id")

	lead, err := lc.LeadRepo.GetLeadByID(id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			config.Logger.Error("Failed to fetch lead", zap.String("lead_id", id), zap.Error(err))
		}
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"lead": lead})
}
