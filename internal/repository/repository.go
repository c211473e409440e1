package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/timsachnhabe/bookstore-api/internal/database"
)

// collection resolves the named collection through the connection manager.
// It fails with database.ErrNotConnected while the store is unreachable,
// which the handlers surface through the generic error path.
func collection(mgr *database.Manager, name string) (*mongo.Collection, error) {
	store, err := mgr.GetStore()
	if err != nil {
		return nil, err
	}
	return store.Collection(name), nil
}
