package controllers

import (
	search_repositories "dealership-backend/search/repositories"

	"github.com/blevesearch/bleve/v2"
	"github.com/gofiber/fiber/v2"
)

type SearchController struct {
	repo search_repositories.SearchRepository
}

func NewSearchController(repo search_repositories.SearchRepository) *SearchController {
	return &SearchController{repo: repo}
}

func searchResponse(ctx *fiber.Ctx, results *bleve.SearchResult) error {
	matches := make([]fiber.Map, 0, len(results.Hits))
	for _, hit := range results.Hits {
		matches = append(matches, fiber.Map{
			"id":     hit.ID,
			"score":  hit.Score,
			"fields": hit.Fields,
		})
	}

	return ctx.JSON(fiber.Map{
		"results": matches,
		"total":   results.Total,
	})
}

// SearchLeadsController answers ?q= lookups over the leads index.
func (c *SearchController) SearchLeadsController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	results, err := c.repo.SearchLeads(query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	return searchResponse(ctx, results)
}

// SearchProductsController answers ?q= lookups over the catalog index.
func (c *SearchController) SearchProductsController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	results, err := c.repo.SearchProducts(query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	return searchResponse(ctx, results)
}
