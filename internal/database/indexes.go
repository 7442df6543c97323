package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the unique indexes backing the model's identity
// invariants: one user per username, one group and one permission per name.
func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := map[string]string{
		"users":       "username",
		"groups":      "name",
		"permissions": "name",
	}

	for collection, field := range unique {
		_, err := s.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
