package group

import (
	"testing"

	"go-auth/internal/common/models"
	"go-auth/internal/features/permission"
)

func TestPermissionsAreSnapshots(t *testing.T) {
	read := permission.New("read")
	g := New("editors", read)

	// Renaming the source permission record must leave the embedded copy
	// showing the original name.
	read.Name = "write"

	if !g.HasPermission("read") {
		t.Error("embedded permission lost its assignment-time name")
	}
	if g.HasPermission("write") {
		t.Error("source rename leaked into the embedded snapshot")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	g := New("editors", permission.New("read"))
	c := g.Clone()

	g.Permissions[0].Name = "write"
	g.Name = "admins"

	if c.Name != "editors" || !c.HasPermission("read") || c.HasPermission("write") {
		t.Errorf("clone aliased the source: %+v", c)
	}
}

func TestAddPermissionOrder(t *testing.T) {
	g := New("editors")
	g.AddPermission(permission.New("read"))
	g.AddPermission(permission.New("write"))

	if len(g.Permissions) != 2 {
		t.Fatalf("len(Permissions) = %d, want 2", len(g.Permissions))
	}
	if g.Permissions[0].Name != "read" || g.Permissions[1].Name != "write" {
		t.Errorf("permission order not preserved: %+v", g.Permissions)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		group   Group
		wantErr bool
	}{
		{"valid", New("editors", permission.New("read")), false},
		{"empty name", New(""), true},
		{"whitespace name", New("   "), true},
		{"embedded permission without name", New("editors", permission.Permission{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.group.Validate()
			if tt.wantErr && !models.IsValidation(err) {
				t.Errorf("Validate() = %v, want ValidationError", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
