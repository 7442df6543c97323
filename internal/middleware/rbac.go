package middleware

import (
	"context"

	"go-auth/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// PermissionChecker answers "does this user carry this permission" from the
// user's embedded group snapshots. Implemented by the user repository; kept
// as an interface here to avoid a middleware -> feature import cycle.
type PermissionChecker interface {
	HasPermission(ctx context.Context, userID string, permission string) (bool, error)
}

// RequirePermission checks if the user has a specific permission
func RequirePermission(checker PermissionChecker, skipAuth bool, requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		allowed, err := checker.HasPermission(c.Context(), claims.UserID, requiredPermission)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
