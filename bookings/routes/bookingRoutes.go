package routes

import (
	bookings_controllers "dealership-backend/bookings/controllers"
	bookings_repositories "dealership-backend/bookings/repositories"
	"dealership-backend/middleware"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingRouterInit wires the service booking endpoints. Creation is
// public (the website booking form posts here); everything else is for
// workshop staff.
func BookingRouterInit(
	app *fiber.App,
	db *gorm.DB,
	sms *utils.GatewaySender,
	notifier bookings_controllers.BookingNotifier,
	appCtx *middleware.AppContext,
) {
	bookingController := &bookings_controllers.BookingController{
		BookingRepo: bookings_repositories.NewBookingRepository(db),
		SMS:         sms,
		Notifier:    notifier,
	}

	api := app.Group("/api/v1")

	api.Post("/bookings", bookingController.CreateBookingController)

	protected := middleware.ProtectedRoute(appCtx)

	api.Get("/bookings", protected, bookingController.GetBookingsController)
	api.Get("/bookings/:id", protected, bookingController.GetBookingController)
	api.Patch("/bookings/:id/status", protected, bookingController.UpdateBookingStatusController)
}
