package permission

import (
	"strings"

	"go-auth/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission is the smallest unit of the authorization graph. Groups embed
// copies of permissions rather than referencing them, so a permission's data
// is frozen into each group at assignment time.
type Permission struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// New constructs an unpersisted permission.
func New(name string) Permission {
	return Permission{
		ID:   primitive.NewObjectID(),
		Name: name,
	}
}

// Validate enforces the required-field invariant before persistence.
func (p Permission) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &models.ValidationError{Field: "name"}
	}
	return nil
}
