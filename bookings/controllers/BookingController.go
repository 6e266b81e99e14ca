package controllers

import (
	"fmt"
	"time"

	"dealership-backend/apperrors"
	bookings_repositories "dealership-backend/bookings/repositories"
	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingNotifier pushes booking changes to the live workshop board.
type BookingNotifier interface {
	NotifyBookingUpdate(booking *models.ServiceBooking)
}

// BookingController handles workshop service appointments.
type BookingController struct {
	BookingRepo bookings_repositories.BookingRepository
	SMS         *utils.GatewaySender
	Notifier    BookingNotifier
}

// CreateBookingController accepts a public service booking request.
func (bc *BookingController) CreateBookingController(c *fiber.Ctx) error {
	var booking models.ServiceBooking
	if err := c.BodyParser(&booking); err != nil {
		config.Logger.Error("Invalid request body for CreateBookingController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if booking.CustomerName == "" || booking.Phone == "" || booking.VehicleRegNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_name, phone and vehicle_reg_no are required",
		})
	}
	if booking.PreferredDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "preferred_date cannot be in the past",
		})
	}

	booking.ID = uuid.Nil
	booking.Status = models.BookingRequested

	created, err := bc.BookingRepo.CreateBooking(&booking)
	if err != nil {
		config.Logger.Error("Failed to create booking", zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if bc.SMS != nil {
		bc.SMS.SendAsync(created.Phone, fmt.Sprintf(
			"Hi %s, we have received your %s service request for %s on %s. We will confirm your slot shortly.",
			created.CustomerName, created.ServiceType, created.VehicleRegNo,
			created.PreferredDate.Format("02 Jan 2006"),
		))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking requested",
		"booking": created,
	})
}

// GetBookingController returns a single booking.
func (bc *BookingController) GetBookingController(c *fiber.Ctx) error {
	booking, err := bc.BookingRepo.GetBookingByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"booking": booking})
}

// GetBookingsController lists bookings by ?date=YYYY-MM-DD or
// ?status=; date wins when both are present.
func (bc *BookingController) GetBookingsController(c *fiber.Ctx) error {
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "date must be YYYY-MM-DD",
			})
		}
		bookings, err := bc.BookingRepo.GetBookingsByDate(date)
		if err != nil {
			return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"bookings": bookings})
	}

	status := models.BookingStatus(c.Query("status", string(models.BookingRequested)))
	bookings, err := bc.BookingRepo.GetBookingsByStatus(status)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

type bookingStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatusController moves a booking through its workflow.
func (bc *BookingController) UpdateBookingStatusController(c *fiber.Ctx) error {
	id := c.Params("id")

	var req bookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	switch req.Status {
	case models.BookingRequested, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unknown booking status %q", req.Status),
		})
	}

	booking, err := bc.BookingRepo.GetBookingByID(id)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	booking.Status = req.Status
	if payload := middleware.AuthPayload(c); payload != nil {
		booking.UpdatedBy = &payload.Email
	}

	updated, err := bc.BookingRepo.UpdateBooking(booking)
	if err != nil {
		config.Logger.Error("Failed to update booking", zap.String("booking_id", id), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if bc.Notifier != nil {
		bc.Notifier.NotifyBookingUpdate(updated)
	}

	if bc.SMS != nil && updated.Status == models.BookingConfirmed {
		bc.SMS.SendAsync(updated.Phone, fmt.Sprintf(
			"Hi %s, your service slot for %s is confirmed on %s (%s).",
			updated.CustomerName, updated.VehicleRegNo,
			updated.PreferredDate.Format("02 Jan 2006"), updated.PreferredSlot,
		))
	}

	return c.JSON(fiber.Map{
		"message": "Booking updated",
		"booking": updated,
	})
}
