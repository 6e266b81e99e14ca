package middleware

import (
	"time"

	"dealership-backend/config"
	"dealership-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// ProtectedRoute verifies the access token cookie and, when it is
// missing or stale, rotates a single-use refresh token from Redis into
// a fresh cookie pair. The verified payload lands in c.Locals("user").
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Cookies("access_token")
		refreshToken := c.Cookies("refresh_token")

		if accessToken != "" {
			payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
			if err == nil {
				c.Locals("user", payload)
				return c.Next()
			}
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
		}

		if refreshToken == "" {
			config.Logger.Debug("No refresh token provided in request")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		refreshPayload, err := ctx.PasetoMaker.VerifyToken(refreshToken)
		if err != nil {
			config.Logger.Error("Invalid refresh token verification failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please log in again.",
			})
		}

		// The full refresh token string is the Redis key so a lookup is
		// also a revocation check.
		userID, err := ctx.RedisClient.Get(ctx.Ctx, "refresh_token:"+refreshToken).Result()
		if err == redis.Nil {
			config.Logger.Warn("Refresh token not found in Redis",
				zap.String("payload_id", refreshPayload.ID.String()),
				zap.String("email", refreshPayload.Email),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session invalid. Please log in again.",
			})
		} else if err != nil {
			config.Logger.Error("Error accessing Redis for refresh token validation",
				zap.String("email", refreshPayload.Email),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		// Single-use: burn the presented refresh token before minting a
		// replacement.
		if err := ctx.RedisClient.Del(ctx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting old refresh token from Redis",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}

		// Rebuild the identity from the verified refresh payload; no DB
		// round-trip on the hot path.
		tokenUser := userFromPayload(refreshPayload)

		newAccessToken, err := ctx.PasetoMaker.CreateToken(tokenUser, accessTokenTTL)
		if err != nil {
			config.Logger.Error("Could not generate new access token",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		newRefreshToken, err := ctx.PasetoMaker.CreateToken(tokenUser, refreshTokenTTL)
		if err != nil {
			config.Logger.Error("Could not generate new refresh token",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		if err := ctx.RedisClient.Set(ctx.Ctx, "refresh_token:"+newRefreshToken, userID, refreshTokenTTL).Err(); err != nil {
			config.Logger.Error("Error storing new refresh token in Redis",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		SetAuthCookies(c, newAccessToken, newRefreshToken)

		newPayload, err := ctx.PasetoMaker.VerifyToken(newAccessToken)
		if err != nil {
			config.Logger.Error("Could not verify freshly minted access token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}
		c.Locals("user", newPayload)
		return c.Next()
	}
}

// RequireRoles allows only the listed roles past. Run after
// ProtectedRoute.
func RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		payload := AuthPayload(c)
		if payload == nil || !allowed[payload.Role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You do not have permission to perform this action",
			})
		}
		return c.Next()
	}
}

// SetAuthCookies writes the access/refresh cookie pair.
func SetAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	secure := config.GetEnv("COOKIE_SECURE") == "true"
	domain := config.GetEnvOr("COOKIE_DOMAIN", "localhost")

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
		Domain:   domain,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
		Domain:   domain,
	})
}
