package controllers

import (
	"time"

	"dealership-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LogoutUserController revokes the refresh token and expires both
// cookies.
func (uc *UserController) LogoutUserController(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		if err := uc.RedisClient.Del(uc.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Failed to revoke refresh token on logout", zap.Error(err))
		}
	}

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
