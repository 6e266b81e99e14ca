package controllers

import (
	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupTOTPController mints an authenticator secret for the logged-in
// user. The secret is held in Redis until the first code confirms the
// app was enrolled; only then does it land on the user record.
func (uc *UserController) SetupTOTPController(c *fiber.Ctx) error {
	payload := middleware.AuthPayload(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	setup, err := uc.OtpService.GenerateTOTPSecret(payload.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate authenticator secret",
		})
	}

	if err := uc.RedisClient.Set(uc.Ctx, "totp_setup:"+payload.UserID.String(), setup.Secret, totpSetupTTL).Err(); err != nil {
		config.Logger.Error("Failed to stash TOTP setup secret",
			zap.String("user_id", payload.UserID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not start authenticator setup",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Scan the QR code and confirm with a code",
		"data":    setup,
	})
}

type enableTOTPRequest struct {
	Code string `json:"code"`
}

// EnableTOTPController confirms enrollment and switches the account to
// authenticator login.
func (uc *UserController) EnableTOTPController(c *fiber.Ctx) error {
	payload := middleware.AuthPayload(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req enableTOTPRequest
	if err := c.BodyParser(&req); err != nil || req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A confirmation code is required",
		})
	}

	secret := uc.RedisClient.Get(uc.Ctx, "totp_setup:"+payload.UserID.String()).Val()
	if secret == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No authenticator setup in progress",
		})
	}

	if !uc.OtpService.ValidateTOTPCode(secret, req.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid confirmation code",
		})
	}

	user, err := uc.UserRepo.GetUserByID(payload.UserID.String())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user",
		})
	}

	user.TOTPSecret = secret
	user.AuthMethod = models.AuthMethodAuthenticator
	if _, err := uc.UserRepo.UpdateUser(user); err != nil {
		config.Logger.Error("Failed to persist TOTP secret",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not enable authenticator login",
		})
	}

	uc.RedisClient.Del(uc.Ctx, "totp_setup:"+payload.UserID.String())

	return c.JSON(fiber.Map{
		"message": "Authenticator login enabled",
	})
}

// DisableTOTPController reverts the account to email OTP login.
func (uc *UserController) DisableTOTPController(c *fiber.Ctx) error {
	payload := middleware.AuthPayload(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	user, err := uc.UserRepo.GetUserByID(payload.UserID.String())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user",
		})
	}

	user.TOTPSecret = ""
	user.AuthMethod = models.AuthMethodPassword
	if _, err := uc.UserRepo.UpdateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not disable authenticator login",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Authenticator login disabled",
	})
}
