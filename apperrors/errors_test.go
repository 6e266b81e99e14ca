package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, fiber.StatusNotFound},
		{ErrInvalidInput, fiber.StatusBadRequest},
		{ErrInvalidRole, fiber.StatusBadRequest},
		{ErrInvalidStatus, fiber.StatusBadRequest},
		{ErrForbidden, fiber.StatusForbidden},
		{ErrConflict, fiber.StatusConflict},
		{errors.New("something else"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err))
	}
}

func TestStatusCodeUnwrapsContext(t *testing.T) {
	wrapped := fmt.Errorf("lead abc123: %w", ErrNotFound)
	assert.Equal(t, fiber.StatusNotFound, StatusCode(wrapped))

	doubleWrapped := fmt.Errorf("assign: %w", wrapped)
	assert.Equal(t, fiber.StatusNotFound, StatusCode(doubleWrapped))
}
