package utils

import (
	"fmt"
	"strings"

	"dealership-backend/config"

	"github.com/gofiber/fiber/v2"
)

// GetDownloadURL generates a download URL for a stored file, https in
// production and http otherwise.
func GetDownloadURL(c *fiber.Ctx, filePath string) string {
	filePath = strings.TrimPrefix(filePath, "./")
	filePath = strings.TrimPrefix(filePath, "/")

	if config.GetEnv("APP_ENV") == "production" {
		return fmt.Sprintf("https://%s/%s", c.Hostname(), filePath)
	}
	return fmt.Sprintf("http://%s/%s", c.Hostname(), filePath)
}
