package permission

import (
	"context"

	"go-auth/internal/common/models"
	"go-auth/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionRepository interface {
	Create(ctx context.Context, perm *Permission) error
	FindByName(ctx context.Context, name string) (*Permission, error)
	FindByID(ctx context.Context, id string) (*Permission, error)
	List(ctx context.Context) ([]Permission, error)
	Replace(ctx context.Context, perm *Permission) error
}

type PermissionRepositoryImpl struct {
	store *database.Store
}

func NewPermissionRepository(store *database.Store) PermissionRepository {
	return &PermissionRepositoryImpl{store: store}
}

// collection resolves the handle per call so operations before the store is
// bound fail with database.ErrNotInitialized instead of panicking.
func (r *PermissionRepositoryImpl) collection() (*mongo.Collection, error) {
	return r.store.Collection("permissions")
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, perm *Permission) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if err := perm.Validate(); err != nil {
		return err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"name": perm.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

	if perm.ID.IsZero() {
		perm.ID = primitive.NewObjectID()
	}

	_, err = coll.InsertOne(ctx, perm)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicate
	}
	return err
}

func (r *PermissionRepositoryImpl) FindByName(ctx context.Context, name string) (*Permission, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var perm Permission
	if err := coll.FindOne(ctx, bson.M{"name": name}).Decode(&perm); err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *PermissionRepositoryImpl) FindByID(ctx context.Context, id string) (*Permission, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var perm Permission
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&perm); err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *PermissionRepositoryImpl) List(ctx context.Context) ([]Permission, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var perms []Permission
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// Replace swaps the whole document. The model defines no partial update.
func (r *PermissionRepositoryImpl) Replace(ctx context.Context, perm *Permission) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if err := perm.Validate(); err != nil {
		return err
	}

	result, err := coll.ReplaceOne(ctx, bson.M{"_id": perm.ID}, perm)
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
