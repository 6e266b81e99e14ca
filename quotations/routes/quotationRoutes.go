package routes

import (
	leads_repositories "dealership-backend/leads/repositories"
	leads_services "dealership-backend/leads/services"
	"dealership-backend/middleware"
	quotations_controllers "dealership-backend/quotations/controllers"
	quotations_repositories "dealership-backend/quotations/repositories"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuotationRouterInit wires the quotation endpoints. The create and
// update paths keep their historical (misspelled) names; deployed
// clients call them literally.
func QuotationRouterInit(
	app *fiber.App,
	db *gorm.DB,
	leadRepo leads_repositories.LeadRepository,
	lifecycle *leads_services.LifecycleService,
	mailer *utils.Mailer,
	whatsapp *utils.GatewaySender,
	appCtx *middleware.AppContext,
) {
	quotationController := &quotations_controllers.QuotationController{
		QuotationRepo: quotations_repositories.NewQuotationRepository(db),
		LeadRepo:      leadRepo,
		Lifecycle:     lifecycle,
		Mailer:        mailer,
		WhatsApp:      whatsapp,
	}

	api := app.Group("/api/v1")

	protected := middleware.ProtectedRoute(appCtx)

	api.Post("/createQoute", protected, quotationController.CreateQuotationController)
	api.Put("/updateQoutation/:id", protected, quotationController.UpdateQuotationController)
	api.Get("/qoutation-pdf/:id", protected, quotationController.GetQuotationPDFController)

	api.Get("/quotations/lead/:leadId", protected, quotationController.ListQuotationsByLeadController)
	api.Get("/quotations/lead/:leadId/latest", protected, quotationController.GetLatestQuotationByLeadController)
	api.Get("/quotations/:id", protected, quotationController.GetQuotationController)
	api.Get("/quotations/:id/html", protected, quotationController.GetQuotationHTMLController)
	api.Get("/quotations/:id/pdf", protected, quotationController.GetQuotationPDFController)
}
