package user

import (
	"context"

	"go-auth/internal/common/models"
	"go-auth/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Replace(ctx context.Context, user *User) error
	HasPermission(ctx context.Context, id string, permission string) (bool, error)
}

type UserRepositoryImpl struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) UserRepository {
	return &UserRepositoryImpl{store: store}
}

func (r *UserRepositoryImpl) collection() (*mongo.Collection, error) {
	return r.store.Collection("users")
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *User) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if err := user.Validate(); err != nil {
		return err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"username": user.Username})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err = coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicate
	}
	return err
}

func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*User, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var user User
	if err := coll.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*User, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var user User
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]User, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// HasPermission answers from the user's embedded group snapshots, not from
// the live group or permission records.
func (r *UserRepositoryImpl) HasPermission(ctx context.Context, id string, permission string) (bool, error) {
	usr, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return usr.HasPermission(permission), nil
}

// Replace swaps the whole document, embedded group snapshots included.
// This is the only write the model defines after Create.
func (r *UserRepositoryImpl) Replace(ctx context.Context, user *User) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if err := user.Validate(); err != nil {
		return err
	}

	result, err := coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicate
		}
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
