package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	id := primitive.NewObjectID()
	token, err := GenerateToken(id, "alice", []string{"editors", "viewers"})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != id.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, id.Hex())
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if len(claims.Groups) != 2 || claims.Groups[0] != "editors" {
		t.Errorf("Groups = %v, want [editors viewers]", claims.Groups)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(primitive.NewObjectID(), "alice", nil)
	if err != nil {
		t.Fatal(err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a different secret validated")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	SetSecret("test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
