package controllers

import (
	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type updateUserRequest struct {
	FirstName      *string      `json:"first_name"`
	LastName       *string      `json:"last_name"`
	Phone          *string      `json:"phone"`
	WhatsAppNumber *string      `json:"whatsapp_number"`
	Role           *models.Role `json:"role"`
	Branch         *string      `json:"branch"`
	Active         *bool        `json:"active"`
	IsSuspended    *bool        `json:"is_suspended"`
}

// UpdateUserController patches mutable account fields. Email and
// password change through dedicated flows, never here.
func (uc *UserController) UpdateUserController(c *fiber.Ctx) error {
	id := c.Params("id")

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for UpdateUserController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := uc.UserRepo.GetUserByID(id)
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.WhatsAppNumber != nil {
		user.WhatsAppNumber = req.WhatsAppNumber
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown role",
			})
		}
		user.Role = *req.Role
	}
	if req.Branch != nil {
		user.Branch = req.Branch
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.IsSuspended != nil {
		user.IsSuspended = *req.IsSuspended
	}

	if payload := middleware.AuthPayload(c); payload != nil {
		user.UpdatedBy = &payload.Email
	}

	updated, err := uc.UserRepo.UpdateUser(user)
	if err != nil {
		config.Logger.Error("Failed to update user", zap.String("user_id", id), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "User updated",
		"user":    updated,
	})
}
