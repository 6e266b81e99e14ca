package controllers

import (
	"dealership-backend/apperrors"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// DeleteUserController soft-deletes an account. Self-deletion is
// blocked so an admin cannot lock themselves out mid-session.
func (uc *UserController) DeleteUserController(c *fiber.Ctx) error {
	id := c.Params("id")

	if payload := middleware.AuthPayload(c); payload != nil && payload.UserID.String() == id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "You cannot delete your own account",
		})
	}

	if err := uc.UserRepo.DeleteUser(id); err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
