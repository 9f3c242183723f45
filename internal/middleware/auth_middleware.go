package middleware

import (
	"strings"

	"go-erp-admin/internal/actor"
	"go-erp-admin/internal/model"
	"go-erp-admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalUserName = "user_name"
	LocalUserRole = "user_role"
)

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, jwt.ErrMissingToken.Error())
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c, err.Error())
		}

		// Set user info in context for downstream handlers
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalUserRole, claims.Role)
		c.SetUserContext(actor.WithActor(c.UserContext(), actor.Actor{ID: claims.UserID, Name: claims.Username}))

		return c.Next()
	}
}

// Passthrough stands in for RequireAuth when authentication is switched off
func Passthrough() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(model.Response{Code: model.CodeUnauthorized, Msg: msg})
}
