package middleware

import (
	"errors"
	"strings"

	"samajam-backend/internal/config"
	"samajam-backend/internal/pkg/jwt"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware gates admin routes behind a Bearer token. Missing,
// invalid and expired tokens each answer 401 with a distinct message;
// anything else during verification is a 500.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			return response.Unauthorized(c, "Access denied. No token provided.")
		}

		claims, err := jwt.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				return response.Unauthorized(c, "Token expired.")
			case errors.Is(err, jwt.ErrTokenInvalid):
				return response.Unauthorized(c, "Invalid token.")
			default:
				return response.InternalServerError(c, "Token verification failed.")
			}
		}

		// Set admin info in context
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
