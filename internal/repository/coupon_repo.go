package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type CouponRepository struct {
	mgr *database.Manager
}

func NewCouponRepository(mgr *database.Manager) *CouponRepository {
	return &CouponRepository{mgr: mgr}
}

func (r *CouponRepository) GetAll(ctx context.Context) ([]models.Coupon, error) {
	col, err := collection(r.mgr, database.CollectionCoupons)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *CouponRepository) GetByPromoID(ctx context.Context, promoID string) (*models.Coupon, error) {
	col, err := collection(r.mgr, database.CollectionCoupons)
	if err != nil {
		return nil, err
	}
	var coupon models.Coupon
	err = col.FindOne(ctx, bson.D{{Key: "promoID", Value: promoID}}).Decode(&coupon)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	col, err := collection(r.mgr, database.CollectionCoupons)
	if err != nil {
		return err
	}
	// Promo codes are unique; reject duplicates up front.
	if existing, err := r.GetByPromoID(ctx, coupon.PromoID); err == nil && existing != nil {
		return utils.ErrDuplicatePromoID
	}
	_, err = col.InsertOne(ctx, coupon)
	return err
}
