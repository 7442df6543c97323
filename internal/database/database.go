package database

import (
	"context"
	"errors"
	"log"
	"time"

	"go-auth/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// ErrNotInitialized is returned by record operations attempted before the
// store reaches the Bound state.
var ErrNotInitialized = errors.New("auth store is not initialized; call Connect first")

// State tracks the store lifecycle. The store is Configured as soon as it is
// constructed and Bound once Connect has selected a database.
type State int

const (
	Unconfigured State = iota
	Configured
	Bound
)

// Store owns the MongoDB connection and the database the auth records live
// in. It replaces an implicit process-wide singleton with an explicit object:
// construct it with NewStore, bind it with Connect, then hand it to the
// repositories. Binding happens once at startup and is never repeated, so
// reads after Connect need no synchronization.
type Store struct {
	uri    string
	dbName string
	state  State
	client *mongo.Client
	db     *mongo.Database
}

// NewStore resolves the connection endpoint and database name from
// configuration and returns a store in the Configured state. Nothing is
// dialed until Connect.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		uri:    cfg.MongoURI,
		dbName: cfg.DBName,
		state:  Configured,
	}
}

// Connect dials the endpoint, verifies the connection, selects the target
// database and creates the uniqueness indexes the model relies on. The store
// is Bound afterwards. Calling Connect on a Bound store is a no-op.
func (s *Store) Connect(ctx context.Context) error {
	if s.state == Bound {
		return nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	s.client = client
	s.db = client.Database(s.dbName)
	s.state = Bound

	return s.ensureIndexes(ctx)
}

// Disconnect tears the connection down. Defined for clean shutdown only;
// the store is not reusable afterwards.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.state != Bound {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Collection returns a handle into the bound database. Before Connect it
// fails fast with ErrNotInitialized so a misordered startup cannot silently
// read from the wrong place.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if s.state != Bound {
		return nil, ErrNotInitialized
	}
	return s.db.Collection(name), nil
}

// NewDatabase constructs the store and ties Connect/Disconnect into the fx
// application lifecycle.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) *Store {
	store := NewStore(cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := store.Connect(ctx); err != nil {
				return err
			}
			log.Println("Connected to MongoDB!")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Disconnecting from MongoDB...")
			return store.Disconnect(ctx)
		},
	})

	return store
}
