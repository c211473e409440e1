package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/models"
)

type CatalogRepository struct {
	mgr *database.Manager
}

func NewCatalogRepository(mgr *database.Manager) *CatalogRepository {
	return &CatalogRepository{mgr: mgr}
}

func (r *CatalogRepository) GetAll(ctx context.Context) ([]models.Catalog, error) {
	col, err := collection(r.mgr, database.CollectionCatalogs)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var catalogs []models.Catalog
	if err := cursor.All(ctx, &catalogs); err != nil {
		return nil, err
	}
	return catalogs, nil
}

func (r *CatalogRepository) Create(ctx context.Context, catalog *models.Catalog) error {
	col, err := collection(r.mgr, database.CollectionCatalogs)
	if err != nil {
		return err
	}
	_, err = col.InsertOne(ctx, catalog)
	return err
}
