package routes

import (
	"dealership-backend/middleware"
	search_controllers "dealership-backend/search/controllers"

	"github.com/gofiber/fiber/v2"
)

// SearchRouterInit wires the full-text search endpoints. Lead search
// exposes customer PII, so it sits behind authentication; catalog
// search is public.
func SearchRouterInit(app *fiber.App, controller *search_controllers.SearchController, appCtx *middleware.AppContext) {
	api := app.Group("/api/v1/search")

	api.Get("/products", controller.SearchProductsController)
	api.Get("/leads", middleware.ProtectedRoute(appCtx), controller.SearchLeadsController)
}
