// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"log/slog"
	"strings"

	"payproc/internal/logging"
	"payproc/internal/models"
	"payproc/internal/utils"
	"payproc/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// Request locals set by AuthMiddleware.
const (
	localsClaims = "claims"
	localsUserID = "userID"
)

// AuthMiddleware validates bearer JWTs and stores the claims in the
// request context.
type AuthMiddleware struct {
	secret string
	logger *slog.Logger
}

func NewAuthMiddleware(secret string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{secret: secret, logger: logging.OrDiscard(logger)}
}

// Handler checks for a Bearer token with a valid signature and expiry.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := utils.ParseToken(m.secret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		m.logger.Warn("token validation failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(localsClaims, claims)
	c.Locals(localsUserID, claims.UserID)
	return c.Next()
}

// Claims returns the claims stored by Handler, if any.
func Claims(c *fiber.Ctx) (*models.UserClaims, bool) {
	claims, ok := c.Locals(localsClaims).(*models.UserClaims)
	return claims, ok && claims != nil
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		if !ok {
			return response.Unauthorized(c)
		}

		// If user is admin, allow all permissions
		if claims.Role == "admin" || claims.HasPermission(permission) {
			return c.Next()
		}
		return response.Forbidden(c)
	}
}
