package routes

import (
	"dealership-backend/db/models"
	"dealership-backend/middleware"
	products_controllers "dealership-backend/products/controllers"
	products_repositories "dealership-backend/products/repositories"
	search_repositories "dealership-backend/search/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProductRouterInit wires the catalog endpoints. Reads are public so
// the website can render the lineup; writes need an elevated role.
func ProductRouterInit(
	app *fiber.App,
	db *gorm.DB,
	searchRepo search_repositories.SearchRepository,
	appCtx *middleware.AppContext,
) {
	productController := &products_controllers.ProductController{
		ProductRepo: products_repositories.NewProductRepository(db),
		SearchRepo:  searchRepo,
	}

	api := app.Group("/api/v1")

	api.Get("/products", productController.GetAllProductsController)
	api.Get("/products/:id", productController.GetProductController)

	protected := middleware.ProtectedRoute(appCtx)
	elevated := middleware.RequireRoles(models.AdminRole, models.EditorRole, models.DSMRole, models.BranchAdminRole)

	api.Post("/products", protected, elevated, productController.CreateProductController)
	api.Put("/products/:id", protected, elevated, productController.UpdateProductController)
	api.Delete("/products/:id", protected, elevated, productController.DeleteProductController)
}
