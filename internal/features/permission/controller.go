package permission

import (
	"errors"

	"go-auth/internal/common/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionController struct {
	Repo PermissionRepository
}

func NewPermissionController(repo PermissionRepository) *PermissionController {
	return &PermissionController{Repo: repo}
}

type CreatePermissionRequest struct {
	Name string `json:"name"`
}

func (ctrl *PermissionController) CreatePermission(c *fiber.Ctx) error {
	var req CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	perm := New(req.Name)
	if err := ctrl.Repo.Create(c.Context(), &perm); err != nil {
		return writeRepoError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(perm)
}

func (ctrl *PermissionController) GetPermission(c *fiber.Ctx) error {
	perm, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Permission not found",
		})
	}
	return c.JSON(perm)
}

func (ctrl *PermissionController) ListPermissions(c *fiber.Ctx) error {
	perms, err := ctrl.Repo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list permissions",
		})
	}
	if perms == nil {
		perms = []Permission{}
	}
	return c.JSON(perms)
}

// ReplacePermission renames a permission record. Groups that embedded the
// permission keep their snapshot of the old data.
func (ctrl *PermissionController) ReplacePermission(c *fiber.Ctx) error {
	perm, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Permission not found",
		})
	}

	var req CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	perm.Name = req.Name
	if err := ctrl.Repo.Replace(c.Context(), perm); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(perm)
}

func writeRepoError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Permission not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
}
