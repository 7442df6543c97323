package group

import (
	"strings"

	"go-auth/internal/common/models"
	"go-auth/internal/features/permission"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group names a set of permissions. The permissions are embedded as
// snapshots: assigning a permission copies its data into the group, and
// later changes to the source permission record do not propagate. Same for
// groups embedded into users. That staleness is the documented behavior of
// this model, not an oversight.
type Group struct {
	ID          primitive.ObjectID      `json:"id" bson:"_id,omitempty"`
	Name        string                  `json:"name" bson:"name"`
	Permissions []permission.Permission `json:"permissions" bson:"permissions"`
}

// New constructs an unpersisted group embedding snapshots of perms.
func New(name string, perms ...permission.Permission) Group {
	g := Group{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Permissions: make([]permission.Permission, 0, len(perms)),
	}
	g.Permissions = append(g.Permissions, perms...)
	return g
}

// Clone returns a deep copy of the group. Embedding a group elsewhere goes
// through Clone so the copy's permission list does not alias the source's.
func (g Group) Clone() Group {
	c := g
	c.Permissions = append([]permission.Permission(nil), g.Permissions...)
	return c
}

// AddPermission embeds a snapshot of p at the end of the permission list.
func (g *Group) AddPermission(p permission.Permission) {
	g.Permissions = append(g.Permissions, p)
}

// HasPermission reports whether the group embeds a permission with the
// given name.
func (g Group) HasPermission(name string) bool {
	for _, p := range g.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Validate enforces the required-field invariant before persistence.
func (g Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return &models.ValidationError{Field: "name"}
	}
	for _, p := range g.Permissions {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
