package user

import (
	"go-auth/internal/config"
	"go-auth/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewUserApi(controller *UserController, config *config.Config, checker middleware.PermissionChecker) *UserApi {
	return &UserApi{
		controller: controller,
		config:     config,
		checker:    checker,
	}
}

// Setup registers all user-related routes
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthMiddleware(h.config.SkipAuth))
	manage := middleware.RequirePermission(h.checker, h.config.SkipAuth, "manage")

	users.Post("/", manage, h.controller.CreateUser)
	users.Get("/", h.controller.ListUsers)
	users.Get("/:id", h.controller.GetUser)
	users.Put("/:id/groups", manage, h.controller.AssignGroup)
	users.Put("/:id/password", h.controller.ChangePassword)
}
