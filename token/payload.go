package token

import (
	"errors"
	"fmt"
	"time"

	"dealership-backend/db/models"

	"github.com/google/uuid"
)

var ErrExpired = errors.New("token has expired")

// Payload carries the authenticated identity. Role travels in the token
// so the authorization boundary doesn't need a user lookup per request.
type Payload struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiredAt time.Time   `json:"expired_at"`
}

func NewPayload(user *models.User, duration time.Duration) (*Payload, error) {
	if user == nil || user.Email == "" {
		return nil, errors.New("user email cannot be empty")
	}
	if duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	payload := &Payload{
		ID:        tokenID,
		UserID:    user.ID,
		Name:      user.FullName(),
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  issuedAt,
		ExpiredAt: expiredAt,
	}
	return payload, nil
}

func (payload *Payload) Valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpired
	}
	return nil
}

func (p *Payload) String() string {
	return fmt.Sprintf("ID: %s, Email: %s, Role: %s, ExpiredAt: %s", p.ID, p.Email, p.Role, p.ExpiredAt)
}
