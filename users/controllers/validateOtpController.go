package controllers

import (
	"time"

	"dealership-backend/config"
	"dealership-backend/db/models"
	"dealership-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type validateOtpRequest struct {
	UserID   string `json:"user_id"`
	Otp      string `json:"otp"`
	PreToken string `json:"pre_token"`
}

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	totpSetupTTL    = 10 * time.Minute
)

// ValidateOtpController is step two of login. The same endpoint closes
// both challenge types: mailed OTPs check against Redis, authenticator
// codes check against the user's TOTP secret after the pre-token proves
// step one happened.
func (uc *UserController) ValidateOtpController(c *fiber.Ctx) error {
	var req validateOtpRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing OTP validation request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}
	if req.UserID == "" || req.Otp == "" || req.PreToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id, otp and pre_token are required",
		})
	}

	user, err := uc.UserRepo.GetUserByID(req.UserID)
	if err != nil {
		config.Logger.Error("Error fetching user during OTP validation",
			zap.String("user_id", req.UserID), zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user or session",
		})
	}

	validated := false
	if user.AuthMethod == models.AuthMethodAuthenticator && user.TOTPSecret != "" {
		validated = uc.OtpService.ValidatePreToken(req.PreToken, "login_totp:"+req.UserID) &&
			uc.OtpService.ValidateTOTPCode(user.TOTPSecret, req.Otp)
	} else {
		validated = uc.OtpService.ValidateOtp(req.Otp, req.PreToken, "login_otp:"+req.UserID)
	}

	if !validated {
		config.Logger.Warn("OTP validation failed", zap.String("user_id", req.UserID))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid OTP or pre-token",
		})
	}

	accessToken, err := uc.PasetoMaker.CreateToken(user, accessTokenTTL)
	if err != nil {
		config.Logger.Error("Error generating access token",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An internal server error occurred during token generation",
		})
	}

	refreshToken, err := uc.PasetoMaker.CreateToken(user, refreshTokenTTL)
	if err != nil {
		config.Logger.Error("Error generating refresh token",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An internal server error occurred during token generation",
		})
	}

	if err := uc.RedisClient.Set(uc.Ctx, "refresh_token:"+refreshToken, user.ID.String(), refreshTokenTTL).Err(); err != nil {
		config.Logger.Error("Error storing refresh token in Redis",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An internal server error occurred during session management",
		})
	}

	middleware.SetAuthCookies(c, accessToken, refreshToken)

	now := time.Now()
	user.LastLoginAt = &now
	if _, err := uc.UserRepo.UpdateUser(user); err != nil {
		config.Logger.Warn("Failed to record last login time",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}
