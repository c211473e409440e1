package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CouponType enumerates promotion kinds.
type CouponType string

const (
	CouponPercent  CouponType = "percent"
	CouponShipping CouponType = "shipping"
)

// Coupon represents a promotion code with a validity window.
type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromoID     string             `bson:"promoID" json:"promoID"`
	PromoName   string             `bson:"promoName" json:"promoName"`
	PromoType   CouponType         `bson:"promoType" json:"promoType"`
	Amount      string             `bson:"amount" json:"amount"`
	StartDate   string             `bson:"startDate" json:"startDate"`
	EndDate     string             `bson:"endDate" json:"endDate"`
	Description string             `bson:"Description" json:"Description"`
}
