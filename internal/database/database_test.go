package database

import (
	"context"
	"errors"
	"testing"

	"go-auth/internal/config"
)

func TestNewStoreIsConfigured(t *testing.T) {
	store := NewStore(&config.Config{
		MongoURI: "mongodb://localhost:27017",
		DBName:   "auth",
	})

	if store.State() != Configured {
		t.Errorf("State() = %v, want Configured", store.State())
	}
}

func TestCollectionBeforeConnectFailsFast(t *testing.T) {
	store := NewStore(&config.Config{
		MongoURI: "mongodb://localhost:27017",
		DBName:   "auth",
	})

	for _, name := range []string{"users", "groups", "permissions"} {
		if _, err := store.Collection(name); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Collection(%q) before Connect: err = %v, want ErrNotInitialized", name, err)
		}
	}
}

func TestDisconnectBeforeConnectIsNoop(t *testing.T) {
	store := NewStore(&config.Config{MongoURI: "mongodb://localhost:27017", DBName: "auth"})
	if err := store.Disconnect(context.Background()); err != nil {
		t.Errorf("Disconnect on an unbound store: %v", err)
	}
}
