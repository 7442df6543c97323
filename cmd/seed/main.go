package main

import (
	"context"
	"errors"
	"log"
	"os"

	common_models "go-auth/internal/common/models"
	"go-auth/internal/config"
	"go-auth/internal/database"
	"go-auth/internal/features/group"
	"go-auth/internal/features/permission"
	"go-auth/internal/features/user"
	"go-auth/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Seed bootstraps the authorization graph: a "manage" permission, an
// "admins" group embedding it, and an "admin" user embedding the group.
// Existing records are left alone, so the command is safe to rerun.
func Seed(
	lc fx.Lifecycle,
	permRepo permission.PermissionRepository,
	groupRepo group.GroupRepository,
	userRepo user.UserRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := seed(context.Background(), permRepo, groupRepo, userRepo, logger); err != nil {
					log.Printf("Seeding failed: %v", err)
				}
				shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

func seed(
	ctx context.Context,
	permRepo permission.PermissionRepository,
	groupRepo group.GroupRepository,
	userRepo user.UserRepository,
	logger *zap.Logger,
) error {
	manage := permission.New("manage")
	if err := permRepo.Create(ctx, &manage); err != nil {
		if !errors.Is(err, common_models.ErrDuplicate) {
			return err
		}
		existing, err := permRepo.FindByName(ctx, "manage")
		if err != nil {
			return err
		}
		manage = *existing
	} else {
		logger.Info("created permission", zap.String("name", manage.Name))
	}

	admins := group.New("admins", manage)
	if err := groupRepo.Create(ctx, &admins); err != nil {
		if !errors.Is(err, common_models.ErrDuplicate) {
			return err
		}
		existing, err := groupRepo.FindByName(ctx, "admins")
		if err != nil {
			return err
		}
		admins = *existing
	} else {
		logger.Info("created group", zap.String("name", admins.Name))
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin"
	}

	admin, err := user.New("admin", adminPassword, []group.Group{admins})
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if !errors.Is(err, common_models.ErrDuplicate) {
			return err
		}
		logger.Info("admin user already exists, skipping")
		return nil
	}

	logger.Info("created user", zap.String("username", admin.Username))
	return nil
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			permission.NewPermissionRepository,
			group.NewGroupRepository,
			user.NewUserRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
