package user

import (
	"os"
	"testing"

	"go-auth/internal/common/models"
	"go-auth/internal/features/group"
	"go-auth/internal/features/permission"
	"go-auth/pkg/password"
)

func TestMain(m *testing.M) {
	// Low-cost parameters keep the suite fast without changing behavior.
	SetHasher(password.NewHasher(password.Params{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}))
	os.Exit(m.Run())
}

func TestNewHashesPassword(t *testing.T) {
	usr, err := New("alice", "s3cret", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if usr.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if usr.Password == "" {
		t.Fatal("password hash is empty")
	}
	if usr.Username != "alice" {
		t.Errorf("username = %q, want %q", usr.Username, "alice")
	}
}

func TestAuthenticateEndToEnd(t *testing.T) {
	usr, err := New("alice", "s3cret", nil)
	if err != nil {
		t.Fatal(err)
	}

	if !usr.Authenticate("s3cret") {
		t.Error("correct password rejected")
	}
	if usr.Authenticate("wrong") {
		t.Error("wrong password accepted")
	}

	if err := usr.SetPassword("newpass"); err != nil {
		t.Fatal(err)
	}
	if usr.Authenticate("s3cret") {
		t.Error("old password still authenticates after SetPassword")
	}
	if !usr.Authenticate("newpass") {
		t.Error("new password rejected after SetPassword")
	}
}

func TestSetPasswordUsesFreshSalt(t *testing.T) {
	usr, err := New("alice", "s3cret", nil)
	if err != nil {
		t.Fatal(err)
	}
	before := usr.Password

	if err := usr.SetPassword("s3cret"); err != nil {
		t.Fatal(err)
	}
	if usr.Password == before {
		t.Error("rehashing the same password reused the old salt")
	}
	if !usr.Authenticate("s3cret") {
		t.Error("password no longer authenticates after rehash")
	}
}

func TestAuthenticateMalformedHashFailsClosed(t *testing.T) {
	usr := &User{Username: "alice", Password: "not a phc string"}
	if usr.Authenticate("anything") {
		t.Error("malformed stored hash authenticated")
	}

	usr.Password = ""
	if usr.Authenticate("") {
		t.Error("empty stored hash authenticated")
	}
}

func TestValidateRequiresUsername(t *testing.T) {
	usr, err := New("", "s3cret", nil)
	if err != nil {
		t.Fatal(err)
	}

	err = usr.Validate()
	if !models.IsValidation(err) {
		t.Fatalf("Validate() = %v, want ValidationError", err)
	}

	usr.Username = "   "
	if err := usr.Validate(); !models.IsValidation(err) {
		t.Errorf("whitespace username passed validation")
	}
}

func TestGroupsAreSnapshots(t *testing.T) {
	read := permission.New("read")
	editors := group.New("editors", read)

	usr, err := New("alice", "s3cret", []group.Group{editors})
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the source records must not touch the embedded copies.
	read.Name = "write"
	editors.Name = "admins"
	editors.Permissions[0].Name = "write"

	if got := usr.Groups[0].Name; got != "editors" {
		t.Errorf("embedded group name = %q, want snapshot %q", got, "editors")
	}
	if !usr.HasPermission("read") {
		t.Error("embedded permission snapshot lost")
	}
	if usr.HasPermission("write") {
		t.Error("rename of the source permission leaked into the snapshot")
	}
}

func TestAssignGroupSnapshots(t *testing.T) {
	usr, err := New("alice", "s3cret", nil)
	if err != nil {
		t.Fatal(err)
	}

	viewers := group.New("viewers", permission.New("read"))
	usr.AssignGroup(viewers)

	viewers.Permissions[0].Name = "renamed"

	if got := usr.GroupNames(); len(got) != 1 || got[0] != "viewers" {
		t.Fatalf("GroupNames() = %v, want [viewers]", got)
	}
	if !usr.HasPermission("read") {
		t.Error("assigned snapshot should keep the original permission name")
	}
}
