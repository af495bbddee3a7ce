// Package middleware provides HTTP middleware for the fiber server.
package middleware

import (
	"errors"
	"log/slog"
	"strings"

	apperrors "checkout/internal/errors"
	"checkout/internal/logger"
	"checkout/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*models.UserClaims, error)
}

// AuthMiddleware handles JWT token validation and user authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the user claims to the request context.
type AuthMiddleware struct {
	validator TokenValidator
	log       *slog.Logger
}

func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		log:       logger.WithComponent("auth-middleware"),
	}
}

// Handler rejects requests without a valid, unrevoked bearer token and
// stores the claims under the "claims" local.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := m.validator.ValidateToken(tokenString)
	if err != nil {
		m.log.Debug("token validation failed", "path", c.Path(), "error", err)
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session expired"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}
