package token

import (
	"strings"
	"testing"
	"time"

	"dealership-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSymmetricKey = "12345678901234567890123456789012"

func testUser() *models.User {
	return &models.User{
		ID:        uuid.New(),
		FirstName: "Arjun",
		LastName:  "Pawar",
		Email:     "arjun@dealership.example",
		Role:      models.DSERole,
	}
}

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	assert.NoError(t, err)

	user := testUser()
	tok, err := maker.CreateToken(user, time.Minute)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(tok, "v2.local."))

	payload, err := maker.VerifyToken(tok)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, "Arjun Pawar", payload.Name)
	assert.Equal(t, user.Email, payload.Email)
	assert.Equal(t, models.DSERole, payload.Role)
	assert.WithinDuration(t, time.Now(), payload.IssuedAt, time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Minute), payload.ExpiredAt, time.Second)
}

func TestPasetoMaker_ExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	assert.NoError(t, err)

	tok, err := maker.CreateToken(testUser(), time.Millisecond)
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	payload, err := maker.VerifyToken(tok)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestPasetoMaker_RejectsBadKeySize(t *testing.T) {
	_, err := NewPasetoMaker("too-short")
	assert.Error(t, err)
}

func TestPasetoMaker_RejectsTamperedToken(t *testing.T) {
	maker, _ := NewPasetoMaker(testSymmetricKey)
	otherMaker, _ := NewPasetoMaker("abcdefghijklmnopqrstuvwxyz123456")

	tok, err := maker.CreateToken(testUser(), time.Minute)
	assert.NoError(t, err)

	_, err = otherMaker.VerifyToken(tok)
	assert.Error(t, err)
}

func TestNewPayload_Validation(t *testing.T) {
	_, err := NewPayload(nil, time.Minute)
	assert.Error(t, err)

	_, err = NewPayload(&models.User{Email: ""}, time.Minute)
	assert.Error(t, err)

	_, err = NewPayload(testUser(), 0)
	assert.Error(t, err)
}
