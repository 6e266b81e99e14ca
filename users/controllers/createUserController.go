package controllers

import (
	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type createUserRequest struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role"`
	Branch    string      `json:"branch"`
}

// CreateUserController registers a staff account. The password is
// hashed in the repository; it never leaves this handler in responses.
func (uc *UserController) CreateUserController(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for CreateUserController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.FirstName == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "first_name, email and password are required",
		})
	}
	if !req.Role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown role",
		})
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
	}
	if req.Branch != "" {
		user.Branch = utils.StringPtr(req.Branch)
	}
	if payload := middleware.AuthPayload(c); payload != nil {
		user.CreatedBy = payload.Email
	}

	created, err := uc.UserRepo.CreateUser(user)
	if err != nil {
		config.Logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
		"user":    created,
	})
}
