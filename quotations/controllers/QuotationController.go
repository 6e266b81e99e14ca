package controllers

import (
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	leads_repositories "dealership-backend/leads/repositories"
	leads_services "dealership-backend/leads/services"
	"dealership-backend/middleware"
	quotations_repositories "dealership-backend/quotations/repositories"
	quotations_services "dealership-backend/quotations/services"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuotationController handles customer quotation documents. Creating a
// quotation also flips the parent lead to the quotation status, so
// reporting picks it up even before any pipeline movement.
type QuotationController struct {
	QuotationRepo quotations_repositories.QuotationRepository
	LeadRepo      leads_repositories.LeadRepository
	Lifecycle     *leads_services.LifecycleService
	Mailer        *utils.Mailer
	WhatsApp      *utils.GatewaySender
}

func actorFrom(c *fiber.Ctx) (leads_services.Actor, bool) {
	payload := middleware.AuthPayload(c)
	if payload == nil {
		return leads_services.Actor{}, false
	}
	return leads_services.Actor{
		ID:    payload.UserID.String(),
		Name:  payload.Name,
		Email: payload.Email,
		Role:  payload.Role,
	}, true
}

// CreateQuotationController creates a quotation against a lead.
// Registered as /createQoute; the path is misspelled but the mobile
// client ships with it hard-coded.
func (qc *QuotationController) CreateQuotationController(c *fiber.Ctx) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var quotation models.Quotation
	if err := c.BodyParser(&quotation); err != nil {
		config.Logger.Error("Invalid request body for CreateQuotationController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if quotation.LeadID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lead_id is required",
		})
	}

	lead, err := qc.LeadRepo.GetLeadByID(quotation.LeadID.String())
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Identity fields default from the lead when the client leaves them
	// out.
	if quotation.CustomerName == "" {
		quotation.CustomerName = lead.CustomerName
	}
	if quotation.Phone == "" {
		quotation.Phone = lead.Phone
	}
	if quotation.Email == nil {
		quotation.Email = lead.Email
	}
	if quotation.ModelName == "" {
		quotation.ModelName = lead.ModelName
	}
	if quotation.Variant == nil {
		quotation.Variant = lead.Variant
	}
	quotation.ID = uuid.Nil
	quotation.CreatedBy = actor.Email

	created, err := qc.QuotationRepo.CreateQuotation(&quotation)
	if err != nil {
		config.Logger.Error("Failed to create quotation",
			zap.String("lead_id", quotation.LeadID.String()), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if _, err := qc.Lifecycle.MarkQuoted(lead.ID.String(), actor); err != nil {
		// The quotation itself is saved; a failed status flip is logged
		// and surfaces on the next reporting sweep.
		config.Logger.Error("Failed to mark lead as quoted",
			zap.String("lead_id", lead.ID.String()), zap.Error(err))
	}

	ref := utils.FormatQuotationNumber(created.ID, created.CreatedAt)
	if qc.Mailer != nil && created.Email != nil {
		qc.Mailer.SendAsync(*created.Email,
			fmt.Sprintf("Dear %s, your quotation %s for the %s has been prepared. Your sales executive will share the document with you shortly.",
				created.CustomerName, ref, created.ModelName),
			fmt.Sprintf("Your quotation %s", ref))
	}
	// Most customers here read WhatsApp before email.
	if qc.WhatsApp != nil && created.Phone != "" {
		qc.WhatsApp.SendAsync(created.Phone,
			fmt.Sprintf("Dear %s, your quotation %s for the %s is ready. Your sales executive will share the document shortly.",
				created.CustomerName, ref, created.ModelName))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Quotation created",
		"quotation": created,
	})
}

// UpdateQuotationController replaces a quotation's figures wholesale.
// Registered as /updateQoutation/:id, another client-frozen spelling.
func (qc *QuotationController) UpdateQuotationController(c *fiber.Ctx) error {
	id := c.Params("id")

	actor, ok := actorFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	existing, err := qc.QuotationRepo.GetQuotationByID(id)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var incoming models.Quotation
	if err := c.BodyParser(&incoming); err != nil {
		config.Logger.Error("Invalid request body for UpdateQuotationController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Identity and provenance never move on update.
	incoming.ID = existing.ID
	incoming.LeadID = existing.LeadID
	incoming.CreatedAt = existing.CreatedAt
	incoming.CreatedBy = existing.CreatedBy
	incoming.UpdatedBy = &actor.Email
	incoming.Lead = nil

	updated, err := qc.QuotationRepo.UpdateQuotation(&incoming)
	if err != nil {
		config.Logger.Error("Failed to update quotation", zap.String("quotation_id", id), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Quotation updated",
		"quotation": updated,
	})
}

// GetQuotationController returns a single quotation.
func (qc *QuotationController) GetQuotationController(c *fiber.Ctx) error {
	quotation, err := qc.QuotationRepo.GetQuotationByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"quotation": quotation})
}

// ListQuotationsByLeadController returns every quotation for a lead,
// newest first.
func (qc *QuotationController) ListQuotationsByLeadController(c *fiber.Ctx) error {
	quotations, err := qc.QuotationRepo.ListQuotationsByLeadID(c.Params("leadId"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"quotations": quotations})
}

// GetLatestQuotationByLeadController returns the authoritative (most
// recent) quotation for a lead.
func (qc *QuotationController) GetLatestQuotationByLeadController(c *fiber.Ctx) error {
	quotation, err := qc.QuotationRepo.GetLatestQuotationByLeadID(c.Params("leadId"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"quotation": quotation})
}

// GetQuotationHTMLController renders the printable document inline.
func (qc *QuotationController) GetQuotationHTMLController(c *fiber.Ctx) error {
	quotation, err := qc.QuotationRepo.GetQuotationByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	html, err := quotations_services.RenderHTML(quotation)
	if err != nil {
		config.Logger.Error("Failed to render quotation HTML",
			zap.String("quotation_id", quotation.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render quotation",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// GetQuotationPDFController renders and returns the PDF document.
func (qc *QuotationController) GetQuotationPDFController(c *fiber.Ctx) error {
	quotation, err := qc.QuotationRepo.GetQuotationByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	filename := fmt.Sprintf("%s.pdf", utils.FormatQuotationNumber(quotation.ID, quotation.CreatedAt))
	path, err := quotations_services.GeneratePDF(quotation, filename)
	if err != nil {
		config.Logger.Error("Failed to generate quotation PDF",
			zap.String("quotation_id", quotation.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate PDF",
		})
	}

	return c.Download("./"+path, filename)
}
