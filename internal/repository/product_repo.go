package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type ProductRepository struct {
	mgr *database.Manager
}

func NewProductRepository(mgr *database.Manager) *ProductRepository {
	return &ProductRepository{mgr: mgr}
}

// GetAll lists products, optionally filtered by catalog code.
func (r *ProductRepository) GetAll(ctx context.Context, catalog string) ([]models.Product, error) {
	col, err := collection(r.mgr, database.CollectionProducts)
	if err != nil {
		return nil, err
	}
	filter := bson.D{}
	if catalog != "" {
		filter = bson.D{{Key: "catalog", Value: catalog}}
	}
	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByISBN looks a product up by its external identifier.
func (r *ProductRepository) GetByISBN(ctx context.Context, isbn int64) (*models.Product, error) {
	col, err := collection(r.mgr, database.CollectionProducts)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = col.FindOne(ctx, bson.D{{Key: "ISBN", Value: isbn}}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs fetches products by internal identity, for order line items.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	col, err := collection(r.mgr, database.CollectionProducts)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	col, err := collection(r.mgr, database.CollectionProducts)
	if err != nil {
		return err
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, product)
	return err
}

// Update replaces the mutable fields of the product identified by ISBN.
func (r *ProductRepository) Update(ctx context.Context, isbn int64, product *models.Product) error {
	col, err := collection(r.mgr, database.CollectionProducts)
	if err != nil {
		return err
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "bookTitle", Value: product.Title},
		{Key: "publisher", Value: product.Publisher},
		{Key: "author", Value: product.Author},
		{Key: "pageCount", Value: product.PageCount},
		{Key: "bookWeight", Value: product.Weight},
		{Key: "price", Value: product.Price},
		{Key: "description", Value: product.Description},
		{Key: "imageUrl", Value: product.ImageURL},
		{Key: "catalog", Value: product.Catalog},
		{Key: "stock", Value: product.Stock},
	}}}
	res, err := col.UpdateOne(ctx, bson.D{{Key: "ISBN", Value: isbn}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

// Delete removes the product identified by ISBN.
func (r *ProductRepository) Delete(ctx context.Context, isbn int64) error {
	col, err := collection(r.mgr, database.CollectionProducts)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.D{{Key: "ISBN", Value: isbn}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}
