package group

import (
	"go-auth/internal/config"
	"go-auth/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GroupApi struct {
	controller *GroupController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewGroupApi(controller *GroupController, config *config.Config, checker middleware.PermissionChecker) *GroupApi {
	return &GroupApi{
		controller: controller,
		config:     config,
		checker:    checker,
	}
}

// Setup registers all group-related routes
func (h *GroupApi) Setup(app *fiber.App) {
	groups := app.Group("/api/groups", middleware.AuthMiddleware(h.config.SkipAuth))
	manage := middleware.RequirePermission(h.checker, h.config.SkipAuth, "manage")

	groups.Post("/", manage, h.controller.CreateGroup)
	groups.Get("/", h.controller.ListGroups)
	groups.Get("/:id", h.controller.GetGroup)
	groups.Put("/:id/permissions", manage, h.controller.AssignPermission)
}
