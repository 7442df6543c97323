package user

import (
	"errors"

	"go-auth/internal/common/models"
	"go-auth/internal/config"
	"go-auth/internal/features/group"
	"go-auth/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserController struct {
	Repo      UserRepository
	GroupRepo group.GroupRepository
	Config    *config.Config
}

func NewUserController(repo UserRepository, groupRepo group.GroupRepository, cfg *config.Config) *UserController {
	return &UserController{
		Repo:      repo,
		GroupRepo: groupRepo,
		Config:    cfg,
	}
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Groups   []string `json:"groups"` // group names to embed
}

type AssignGroupRequest struct {
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	Password string `json:"password"`
}

func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var groups []group.Group
	for _, name := range req.Groups {
		g, err := ctrl.GroupRepo.FindByName(c.Context(), name)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown group: " + name,
			})
		}
		groups = append(groups, *g)
	}

	usr, err := New(req.Username, req.Password, groups)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	if err := ctrl.Repo.Create(c.Context(), usr); err != nil {
		return writeRepoError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(usr)
}

func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	usr, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(usr)
}

func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctrl.Repo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list users",
		})
	}
	if users == nil {
		users = []User{}
	}
	return c.JSON(users)
}

// AssignGroup embeds a snapshot of the named group into the user and
// replaces the whole document.
func (ctrl *UserController) AssignGroup(c *fiber.Ctx) error {
	usr, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var req AssignGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	g, err := ctrl.GroupRepo.FindByName(c.Context(), req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown group: " + req.Name,
		})
	}

	usr.AssignGroup(*g)
	if err := ctrl.Repo.Replace(c.Context(), usr); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(usr)
}

// ChangePassword rehashes under a fresh salt and replaces the document.
// Users may rotate their own password; changing someone else's requires the
// manage permission.
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	if claims := middleware.ClaimsFromContext(c); !ctrl.Config.SkipAuth && claims != nil && claims.UserID != c.Params("id") {
		allowed, err := ctrl.Repo.HasPermission(c.Context(), claims.UserID, "manage")
		if err != nil || !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}
	}

	usr, err := ctrl.Repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := usr.SetPassword(req.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update password",
		})
	}

	if err := ctrl.Repo.Replace(c.Context(), usr); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

func writeRepoError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
}
