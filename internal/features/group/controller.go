package group

import (
	"errors"

	"go-auth/internal/common/models"
	"go-auth/internal/features/permission"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type GroupController struct {
	Repo           GroupRepository
	PermissionRepo permission.PermissionRepository
}

func NewGroupController(repo GroupRepository, permRepo permission.PermissionRepository) *GroupController {
	return &GroupController{
		Repo:           repo,
		PermissionRepo: permRepo,
	}
}

type CreateGroupRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"` // permission names to embed
}

type AssignPermissionRequest struct {
	Name string `json:"name"`
}

func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	var req CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	group := New(req.Name)
	for _, name := range req.Permissions {
		perm, err := ctrl.PermissionRepo.FindByName(c.Context(), name)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown permission: " + name,
			})
		}
		group.AddPermission(*perm)
	}

	if err := ctrl.Repo.Create(c.Context(), &group); err != nil {
		return writeRepoError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func (ctrl *GroupController) GetGroup(c *fiber.Ctx) error {
	group, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Group not found",
		})
	}
	return c.JSON(group)
}

func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	groups, err := ctrl.Repo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list groups",
		})
	}
	if groups == nil {
		groups = []Group{}
	}
	return c.JSON(groups)
}

// AssignPermission embeds a snapshot of the named permission into the group
// and replaces the whole document.
func (ctrl *GroupController) AssignPermission(c *fiber.Ctx) error {
	group, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Group not found",
		})
	}

	var req AssignPermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	perm, err := ctrl.PermissionRepo.FindByName(c.Context(), req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown permission: " + req.Name,
		})
	}

	group.AddPermission(*perm)
	if err := ctrl.Repo.Replace(c.Context(), group); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(group)
}

func writeRepoError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
}
