package routes

import (
	"dealership-backend/db/models"
	"dealership-backend/middleware"
	users_controllers "dealership-backend/users/controllers"
	users_repositories "dealership-backend/users/repositories"
	users_services "dealership-backend/users/services"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRouterInit wires account management and the login flow.
func UserRouterInit(
	app *fiber.App,
	db *gorm.DB,
	mailer *utils.Mailer,
	appCtx *middleware.AppContext,
) {
	userController := &users_controllers.UserController{
		UserRepo:    users_repositories.NewUserRepository(db),
		PasetoMaker: appCtx.PasetoMaker,
		OtpService:  users_services.NewOtpService(appCtx.RedisClient, appCtx.Ctx),
		Mailer:      mailer,
		Ctx:         appCtx.Ctx,
		RedisClient: appCtx.RedisClient,
	}

	api := app.Group("/api/v1")

	api.Post("/login", userController.LoginUserController)
	api.Post("/validate-otp", userController.ValidateOtpController)
	api.Post("/logout", userController.LogoutUserController)

	protected := middleware.ProtectedRoute(appCtx)

	api.Post("/auth/totp/setup", protected, userController.SetupTOTPController)
	api.Post("/auth/totp/enable", protected, userController.EnableTOTPController)
	api.Post("/auth/totp/disable", protected, userController.DisableTOTPController)

	admin := middleware.RequireRoles(models.AdminRole, models.BranchAdminRole)

	api.Post("/users", protected, admin, userController.CreateUserController)
	api.Get("/users", protected, userController.GetAllUsersController)
	api.Get("/users/filtered", protected, userController.GetFilteredUsersController)
	api.Get("/users/:id", protected, userController.GetUserController)
	api.Put("/users/:id", protected, admin, userController.UpdateUserController)
	api.Delete("/users/:id", protected, admin, userController.DeleteUserController)
}
