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

type UserRepository struct {
	mgr *database.Manager
}

func NewUserRepository(mgr *database.Manager) *UserRepository {
	return &UserRepository{mgr: mgr}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	col, err := collection(r.mgr, database.CollectionUsers)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	col, err := collection(r.mgr, database.CollectionUsers)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	col, err := collection(r.mgr, database.CollectionUsers)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	col, err := collection(r.mgr, database.CollectionUsers)
	if err != nil {
		return err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, user)
	return err
}

// UpdateProfile updates the mutable profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName, phoneNumber, address string) error {
	col, err := collection(r.mgr, database.CollectionUsers)
	if err != nil {
		return err
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "fullName", Value: fullName},
		{Key: "phoneNumber", Value: phoneNumber},
		{Key: "address", Value: address},
	}}}
	res, err := col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
