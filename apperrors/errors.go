// Package apperrors defines the domain error taxonomy. Services return
// these sentinels (usually wrapped with context); controllers translate
// them to HTTP status codes in exactly one place.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotFound: a referenced lead/assignee/quotation/costing is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput: a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRole: the resolved account cannot fill the requested role,
	// e.g. assigning a lead to a non-DSE account.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidStatus: a supplied lead status is outside the C0-C3 set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrForbidden: the actor lacks permission for the requested change.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: uniqueness violation (duplicate phone/email).
	ErrConflict = errors.New("conflict")
)

// StatusCode maps a domain error to its HTTP status. Unrecognized
// errors are server errors.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
