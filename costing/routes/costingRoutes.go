package routes

import (
	costing_controllers "dealership-backend/costing/controllers"
	costing_repositories "dealership-backend/costing/repositories"
	"dealership-backend/db/models"
	leads_repositories "dealership-backend/leads/repositories"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// CostingRouterInit wires the internal costing endpoints. All of them
// sit behind authentication and an elevated-role gate; costing sheets
// carry dealer margin data that field sales staff must not see.
func CostingRouterInit(
	app *fiber.App,
	db *gorm.DB,
	leadRepo leads_repositories.LeadRepository,
	asynqClient *asynq.Client,
	appCtx *middleware.AppContext,
) {
	costingController := &costing_controllers.CostingController{
		CostingRepo: costing_repositories.NewCostingRepository(db),
		LeadRepo:    leadRepo,
		AsynqClient: asynqClient,
	}

	api := app.Group("/api/v1")

	protected := middleware.ProtectedRoute(appCtx)
	elevated := middleware.RequireRoles(models.AdminRole, models.EditorRole, models.DSMRole, models.BranchAdminRole)

	api.Post("/internal-costing", protected, elevated, costingController.CreateCostingController)
	api.Put("/internal-costing/:id", protected, elevated, costingController.UpdateCostingController)
	api.Get("/internal-costing/lead/:leadId", protected, elevated, costingController.GetCostingByLeadController)
}
