package routes

import (
	documents_controllers "dealership-backend/documents/controllers"
	documents_repositories "dealership-backend/documents/repositories"
	"dealership-backend/middleware"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DocumentRouterInit wires the media upload endpoints. KYC scans come
// through here, so everything is authenticated.
func DocumentRouterInit(
	app *fiber.App,
	db *gorm.DB,
	storage utils.FileStorage,
	appCtx *middleware.AppContext,
) {
	documentController := &documents_controllers.DocumentController{
		DocumentRepo: documents_repositories.NewDocumentRepository(db),
		Storage:      storage,
	}

	api := app.Group("/api/v1")

	protected := middleware.ProtectedRoute(appCtx)

	api.Post("/documents", protected, documentController.UploadDocumentController)
	api.Get("/documents/:id/download", protected, documentController.DownloadDocumentController)
	api.Get("/documents/:ownerType/:ownerId", protected, documentController.GetDocumentsByOwnerController)
	api.Delete("/documents/:id", protected, documentController.DeleteDocumentController)
}
