package middleware

import (
	"go-auth/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates JWT tokens and injects user claims into context
func AuthMiddleware(skipAuth bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			// Inject dummy context for dev
			dummyClaims := &utils.UserClaims{
				UserID:   "dev-admin-id",
				Username: "dev-admin",
				Groups:   []string{},
			}
			c.Locals(utils.UserClaimsKey, dummyClaims)
			return c.Next()
		}

		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(utils.UserClaimsKey, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware injects claims when a valid token is present but
// lets anonymous requests through. Used by pages that render differently
// for authenticated identities.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c); ok {
			if claims, err := utils.ValidateToken(token); err == nil {
				c.Locals(utils.UserClaimsKey, claims)
			}
		}
		return c.Next()
	}
}

// ClaimsFromContext returns the validated claims stored by the middleware,
// or nil for anonymous requests.
func ClaimsFromContext(c *fiber.Ctx) *utils.UserClaims {
	claims, _ := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	return claims
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", false
	}
	return authHeader[7:], true
}
