package token

import (
	"time"

	"dealership-backend/db/models"
)

// Maker creates and verifies auth tokens. Keeping this as an interface
// lets the token implementation change without touching middleware or
// controllers.
type Maker interface {
	CreateToken(user *models.User, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
