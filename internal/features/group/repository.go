package group

import (
	"context"

	"go-auth/internal/common/models"
	"go-auth/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GroupRepository interface {
	Create(ctx context.Context, group *Group) error
	FindByName(ctx context.Context, name string) (*Group, error)
	FindByID(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context) ([]Group, error)
	Replace(ctx context.Context, group *Group) error
}

type GroupRepositoryImpl struct {
	store *database.Store
}

func NewGroupRepository(store *database.Store) GroupRepository {
	return &GroupRepositoryImpl{store: store}
}

func (r *GroupRepositoryImpl) collection() (*mongo.Collection, error) {
	return r.store.Collection("groups")
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *Group) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if err := group.Validate(); err != nil {
		return err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"name": group.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

	if group.ID.IsZero() {
		group.ID = primitive.NewObjectID()
	}

	_, err = coll.InsertOne(ctx, group)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicate
	}
	return err
}

func (r *GroupRepositoryImpl) FindByName(ctx context.Context, name string) (*Group, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var group Group
	if err := coll.FindOne(ctx, bson.M{"name": name}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepositoryImpl) FindByID(ctx context.Context, id string) (*Group, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var group Group
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepositoryImpl) List(ctx context.Context) ([]Group, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Replace swaps the whole document, embedded permission snapshots included.
func (r *GroupRepositoryImpl) Replace(ctx context.Context, group *Group) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if err := group.Validate(); err != nil {
		return err
	}

	result, err := coll.ReplaceOne(ctx, bson.M{"_id": group.ID}, group)
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
