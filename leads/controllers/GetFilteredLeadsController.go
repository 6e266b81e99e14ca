package controllers

import (
	"dealership-backend/config"
	"dealership-backend/utils"
	"dealership-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredLeadsController lists leads with status/assignee/model
// filters and pagination.
func (lc *LeadController) GetFilteredLeadsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	leads, total, err := lc.LeadRepo.GetFilteredLeads(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered leads", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch leads",
		})
	}

	return c.JSON(pagination.NewPaginatedResponse(c, leads, total, params))
}

// GetLeadStageCountsController returns the pipeline funnel counts.
func (lc *LeadController) GetLeadStageCountsController(c *fiber.Ctx) error {
	counts, err := lc.LeadRepo.CountByStage()
	if err != nil {
		config.Logger.Error("Failed to count leads by stage", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch stage counts",
		})
	}
	return c.JSON(fiber.Map{"counts": counts})
}

// ExportLeadsController writes the filtered leads into an Excel
// workbook and returns its download URL.
func (lc *LeadController) ExportLeadsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)

	leads, err := lc.LeadRepo.GetAllLeadsFiltered(params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch leads for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch leads",
		})
	}

	filePath, err := utils.GenerateLeadsExcel(leads)
	if err != nil {
		config.Logger.Error("Failed to generate leads workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate export",
		})
	}

	return c.JSON(fiber.Map{
		"message":      "Export generated",
		"download_url": utils.GetDownloadURL(c, filePath),
		"count":        len(leads),
	})
}
