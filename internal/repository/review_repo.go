package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/models"
)

type ReviewRepository struct {
	mgr *database.Manager
}

func NewReviewRepository(mgr *database.Manager) *ReviewRepository {
	return &ReviewRepository{mgr: mgr}
}

// GetByBookID lists reviews for a product by its ISBN.
func (r *ReviewRepository) GetByBookID(ctx context.Context, isbn int64) ([]models.Review, error) {
	col, err := collection(r.mgr, database.CollectionReviews)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.D{{Key: "bookId", Value: isbn}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	col, err := collection(r.mgr, database.CollectionReviews)
	if err != nil {
		return err
	}
	_, err = col.InsertOne(ctx, review)
	return err
}
