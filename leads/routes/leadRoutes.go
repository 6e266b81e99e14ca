package routes

import (
	controllers "dealership-backend/leads/controllers"
	leads_repositories "dealership-backend/leads/repositories"
	leads_services "dealership-backend/leads/services"
	"dealership-backend/middleware"
	search_repositories "dealership-backend/search/repositories"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeadRouterInit wires the lead endpoints. The create/assign/update
// paths are the ones mobile and showroom clients were built against;
// they stay verbatim.
func LeadRouterInit(
	app *fiber.App,
	db *gorm.DB,
	lifecycle *leads_services.LifecycleService,
	leadRepo leads_repositories.LeadRepository,
	searchRepo search_repositories.SearchRepository,
	mailer *utils.Mailer,
	sms *utils.GatewaySender,
	appCtx *middleware.AppContext,
) {
	leadController := &controllers.LeadController{
		Lifecycle:   lifecycle,
		LeadRepo:    leadRepo,
		EnquiryRepo: leads_repositories.NewEnquiryRepository(db),
		DB:          db,
		Mailer:      mailer,
		SMS:         sms,
		SearchRepo:  searchRepo,
	}

	api := app.Group("/api/v1")

	// Public quote submission
	api.Post("/leads-create", leadController.CreateLeadController)
	api.Get("/leads-get/:id", leadController.GetLeadController)

	// Legacy enquiry surface; still submitted by the old website form
	api.Post("/enquiry", leadController.CreateEnquiryController)

	protected := middleware.ProtectedRoute(appCtx)

	api.Get("/enquiries", protected, leadController.GetEnquiriesController)
	api.Post("/enquiries/:id/promote", protected, leadController.PromoteEnquiryController)

	api.Post("/assign", protected, leadController.AssignLeadController)
	api.Patch("/leads/:id", protected, leadController.DseUpdateController)

	api.Get("/leads/filtered", protected, leadController.GetFilteredLeadsController)
	api.Get("/leads/stage-counts", protected, leadController.GetLeadStageCountsController)
	api.Get("/leads/export", protected, leadController.ExportLeadsController)
}
