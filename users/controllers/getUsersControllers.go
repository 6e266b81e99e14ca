package controllers

import (
	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetUserController returns one account.
func (uc *UserController) GetUserController(c *fiber.Ctx) error {
	user, err := uc.UserRepo.GetUserByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetAllUsersController lists every account, unpaginated. Used by the
// assignment picker, which needs the full DSE roster at once.
func (uc *UserController) GetAllUsersController(c *fiber.Ctx) error {
	users, err := uc.UserRepo.GetAllUsers()
	if err != nil {
		config.Logger.Error("Failed to list users", zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetFilteredUsersController lists accounts with pagination and query
// filters (role, branch, active, search window).
func (uc *UserController) GetFilteredUsersController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	users, total, err := uc.UserRepo.GetFilteredUsers(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	return c.JSON(pagination.NewPaginatedResponse(c, users, total, params))
}
