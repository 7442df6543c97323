package auth

import (
	"context"
	"errors"
	"os"
	"testing"

	"go-auth/internal/common/models"
	"go-auth/internal/features/user"
	"go-auth/pkg/password"
	"go-auth/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	user.SetHasher(password.NewHasher(password.Params{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}))
	os.Exit(m.Run())
}

// fakeUserRepo is an in-memory UserRepository keyed by username.
type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if _, exists := r.users[u.Username]; exists {
		return models.ErrDuplicate
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) HasPermission(ctx context.Context, id string, permission string) (bool, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return u.HasPermission(permission), nil
}

func (r *fakeUserRepo) Replace(ctx context.Context, u *user.User) error {
	for name, existing := range r.users {
		if existing.ID == u.ID {
			delete(r.users, name)
			r.users[u.Username] = u
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func newTestService(repo user.UserRepository) AuthService {
	return NewAuthService(repo, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	usr, err := svc.Register(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if usr.Password == "s3cret" {
		t.Fatal("Register stored the plaintext password")
	}

	token, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("token username = %q, want %q", claims.Username, "alice")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody", "s3cret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login for unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterEmptyUsername(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "s3cret")
	if !models.IsValidation(err) {
		t.Errorf("Register with empty username: err = %v, want ValidationError", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, "alice", "other"); !errors.Is(err, models.ErrDuplicate) {
		t.Errorf("second Register: err = %v, want ErrDuplicate", err)
	}
}
