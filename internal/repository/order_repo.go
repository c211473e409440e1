package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type OrderRepository struct {
	mgr *database.Manager
}

func NewOrderRepository(mgr *database.Manager) *OrderRepository {
	return &OrderRepository{mgr: mgr}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	col, err := collection(r.mgr, database.CollectionOrders)
	if err != nil {
		return err
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, order)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	col, err := collection(r.mgr, database.CollectionOrders)
	if err != nil {
		return nil, err
	}
	var order models.Order
	err = col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	col, err := collection(r.mgr, database.CollectionOrders)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.D{{Key: "userId", Value: userID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	col, err := collection(r.mgr, database.CollectionOrders)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	col, err := collection(r.mgr, database.CollectionOrders)
	if err != nil {
		return err
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	res, err := col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrOrderNotFound
	}
	return nil
}
