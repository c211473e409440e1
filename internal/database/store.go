package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps a mongo database with the narrow operations the seed planner
// and repositories need. Repositories reach the raw collection through
// Collection; the seed planner only ever counts and batch-inserts.
type Store struct {
	db *mongo.Database
}

// NewStore creates a Store over an established mongo database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Count returns the number of documents in the named collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.D{})
}

// InsertMany inserts the documents into the named collection in one batch.
// Documents carry pre-assigned ObjectIDs so callers can reference them
// across stages without reading the store back.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	_, err := s.db.Collection(collection).InsertMany(ctx, docs)
	return err
}

// Collection exposes the underlying mongo collection for repository use.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}
