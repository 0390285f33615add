package handlers

import (
	perrors "payproc/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain error codes to HTTP status codes.
func statusFor(code string) int {
	switch code {
	case perrors.CodeInvalidMetadata:
		return fiber.StatusBadRequest
	case perrors.CodeUnsupportedMethod:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
