package permission

import (
	"go-auth/internal/config"
	"go-auth/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PermissionApi struct {
	controller *PermissionController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewPermissionApi(controller *PermissionController, config *config.Config, checker middleware.PermissionChecker) *PermissionApi {
	return &PermissionApi{
		controller: controller,
		config:     config,
		checker:    checker,
	}
}

// Setup registers all permission-related routes
func (h *PermissionApi) Setup(app *fiber.App) {
	perms := app.Group("/api/permissions", middleware.AuthMiddleware(h.config.SkipAuth))
	manage := middleware.RequirePermission(h.checker, h.config.SkipAuth, "manage")

	perms.Post("/", manage, h.controller.CreatePermission)
	perms.Get("/", h.controller.ListPermissions)
	perms.Get("/:id", h.controller.GetPermission)
	perms.Put("/:id", manage, h.controller.ReplacePermission)
}
