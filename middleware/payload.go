package middleware

import (
	"strings"

	"dealership-backend/db/models"
	"dealership-backend/token"

	"github.com/gofiber/fiber/v2"
)

// AuthPayload returns the token payload stored by ProtectedRoute, nil
// when the request is unauthenticated.
func AuthPayload(c *fiber.Ctx) *token.Payload {
	payload, ok := c.Locals("user").(*token.Payload)
	if !ok {
		return nil
	}
	return payload
}

// userFromPayload rebuilds enough of a User to mint replacement tokens.
func userFromPayload(p *token.Payload) *models.User {
	first, last := splitName(p.Name)
	return &models.User{
		ID:        p.UserID,
		FirstName: first,
		LastName:  last,
		Email:     p.Email,
		Role:      p.Role,
	}
}

func splitName(full string) (string, string) {
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
