package auth

import (
	"context"
	"errors"

	"go-auth/internal/features/user"
	"go-auth/pkg/utils"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Register(ctx context.Context, username, password string) (*user.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
	Logger   *zap.Logger
}

func NewAuthService(userRepo user.UserRepository, logger *zap.Logger) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
		Logger:   logger,
	}
}

// Register creates a user with no groups. Group assignment is a separate,
// authenticated operation.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (*user.User, error) {
	newUser, err := user.New(username, password, nil)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.String("username", username))
	return newUser, nil
}

// Login verifies the candidate password against the stored hash and issues
// a signed token carrying the identity and its group names. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	usr, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !usr.Authenticate(password) {
		s.Logger.Warn("failed login attempt", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Username, usr.GroupNames())
	if err != nil {
		return "", err
	}

	return token, nil
}
