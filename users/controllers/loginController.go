package controllers

import (
	"dealership-backend/config"
	"dealership-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserController is step one of login: password check, then an OTP
// challenge. Accounts with an authenticator configured validate a TOTP
// code instead of a mailed OTP; both converge on ValidateOtpController.
func (uc *UserController) LoginUserController(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	user, err := uc.UserRepo.GetUserByEmail(req.Email)
	if err != nil || uc.UserRepo.VerifyPassword(user, req.Password) != nil {
		config.Logger.Warn("Failed login attempt", zap.String("email", req.Email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if !user.Active || user.IsSuspended {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Account is disabled",
		})
	}

	if user.AuthMethod == models.AuthMethodAuthenticator && user.TOTPSecret != "" {
		// Pre-token still anchors the second step, but no email goes
		// out; the code comes from the authenticator app.
		_, preToken := uc.OtpService.GenerateOtp("login_totp:" + user.ID.String())
		return c.JSON(fiber.Map{
			"message": "Authenticator code required",
			"data": fiber.Map{
				"requires_totp": true,
				"user_id":       user.ID.String(),
				"pre_token":     preToken,
			},
		})
	}

	if !uc.OtpService.AllowOtpRequest(user.Email) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many OTP requests. Try again in a moment.",
		})
	}

	otp, preToken := uc.OtpService.GenerateOtp("login_otp:" + user.ID.String())
	if otp == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not start login session",
		})
	}

	go func() {
		if err := uc.Mailer.SendEmail(user.Email, "Use this code to finish signing in.", "Your login code", otp, ""); err != nil {
			config.Logger.Error("Failed to send login OTP email",
				zap.String("email", user.Email), zap.Error(err))
		}
	}()

	return c.JSON(fiber.Map{
		"message": "OTP sent successfully",
		"data": fiber.Map{
			"requires_totp": false,
			"user_id":       user.ID.String(),
			"pre_token":     preToken,
		},
	})
}
