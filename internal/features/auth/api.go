package auth

import (
	"go-auth/internal/config"
	"go-auth/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, config *config.Config) *AuthApi {
	return &AuthApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers the auth routes and the public/private pages
func (h *AuthApi) Setup(app *fiber.App) {
	app.Post("/api/auth/register", h.controller.Register)
	app.Post("/api/auth/login", h.controller.Login)

	app.Get("/public", middleware.OptionalAuthMiddleware(), h.controller.Public)
	app.Get("/private", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Private)
}
