package controllers

import (
	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"
	products_repositories "dealership-backend/products/repositories"
	search_repositories "dealership-backend/search/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductController handles the vehicle catalog.
type ProductController struct {
	ProductRepo products_repositories.ProductRepository
	SearchRepo  search_repositories.SearchRepository
}

func (pc *ProductController) index(product *models.Product) {
	if pc.SearchRepo == nil {
		return
	}
	if err := pc.SearchRepo.IndexSingleProduct(*product); err != nil {
		config.Logger.Error("Error indexing product",
			zap.String("product_id", product.ID.String()),
			zap.Error(err),
		)
	}
}

// CreateProductController adds a vehicle to the catalog.
func (pc *ProductController) CreateProductController(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		config.Logger.Error("Invalid request body for CreateProductController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if product.ModelName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "model_name is required",
		})
	}

	product.ID = uuid.Nil
	if payload := middleware.AuthPayload(c); payload != nil {
		product.CreatedBy = payload.Email
	}

	created, err := pc.ProductRepo.CreateProduct(&product)
	if err != nil {
		config.Logger.Error("Failed to create product", zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	pc.index(created)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"product": created,
	})
}

// GetProductController returns a single catalog entry.
func (pc *ProductController) GetProductController(c *fiber.Ctx) error {
	product, err := pc.ProductRepo.GetProductByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"product": product})
}

// GetAllProductsController lists the catalog. Pass ?all=true to include
// discontinued models.
func (pc *ProductController) GetAllProductsController(c *fiber.Ctx) error {
	activeOnly := c.Query("all") != "true"

	products, err := pc.ProductRepo.GetAllProducts(activeOnly)
	if err != nil {
		config.Logger.Error("Failed to list products", zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"products": products})
}

// UpdateProductController replaces a catalog entry's mutable fields.
func (pc *ProductController) UpdateProductController(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := pc.ProductRepo.GetProductByID(id)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var incoming models.Product
	if err := c.BodyParser(&incoming); err != nil {
		config.Logger.Error("Invalid request body for UpdateProductController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	incoming.ID = existing.ID
	incoming.CreatedAt = existing.CreatedAt
	incoming.CreatedBy = existing.CreatedBy
	if payload := middleware.AuthPayload(c); payload != nil {
		incoming.UpdatedBy = &payload.Email
	}

	updated, err := pc.ProductRepo.UpdateProduct(&incoming)
	if err != nil {
		config.Logger.Error("Failed to update product", zap.String("product_id", id), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	pc.index(updated)

	return c.JSON(fiber.Map{
		"message": "Product updated",
		"product": updated,
	})
}

// DeleteProductController soft-deletes a catalog entry.
func (pc *ProductController) DeleteProductController(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := pc.ProductRepo.DeleteProduct(id); err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
