package user

import (
	"strings"

	"go-auth/internal/common/models"
	"go-auth/internal/features/group"
	"go-auth/pkg/password"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// hasher derives and verifies the stored password hashes. Verification reads
// its cost parameters out of each stored hash, so swapping this for a
// stronger configuration never invalidates existing credentials.
var hasher = password.Default()

// SetHasher allows injecting hash parameters from config
func SetHasher(h *password.Hasher) {
	hasher = h
}

// User is the authenticatable identity. Password always holds hasher
// output, never plaintext. Groups are embedded snapshots copied at
// assignment time; renaming a source group or permission afterwards does
// not touch the copies stored here.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
	Groups   []group.Group      `json:"groups" bson:"groups"`
}

// New constructs an unpersisted user with the plaintext hashed under a
// fresh salt. Persistence is the repository's job.
func New(username, plaintext string, groups []group.Group) (*User, error) {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	gs := make([]group.Group, 0, len(groups))
	for _, g := range groups {
		gs = append(gs, g.Clone())
	}

	return &User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: hash,
		Groups:   gs,
	}, nil
}

// Authenticate reports whether plaintext matches the stored hash. A stored
// hash that is malformed or empty is a definite non-match.
func (u *User) Authenticate(plaintext string) bool {
	return hasher.Verify(u.Password, plaintext)
}

// SetPassword replaces the stored hash with one derived under a fresh salt.
// Old salts are never reused for new passwords.
func (u *User) SetPassword(plaintext string) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// AssignGroup embeds a snapshot of g at the end of the group list.
func (u *User) AssignGroup(g group.Group) {
	u.Groups = append(u.Groups, g.Clone())
}

// GroupNames returns the names of the embedded groups, in order.
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}

// HasPermission reports whether any embedded group carries the named
// permission.
func (u *User) HasPermission(name string) bool {
	for _, g := range u.Groups {
		if g.HasPermission(name) {
			return true
		}
	}
	return false
}

// Validate enforces the required-field invariant before persistence.
func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return &models.ValidationError{Field: "username"}
	}
	for _, g := range u.Groups {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	return nil
}
