package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice is the billing record derived from an order. Customer name/email
// and the payment method are denormalized from the order's owning user so
// the invoice reconciles without re-reading other collections.
// FinalAmount = ProductTotal - DiscountAmount, never negative.
type Invoice struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID        string             `bson:"orderId" json:"orderId"`
	OrderDate      time.Time          `bson:"orderDate" json:"orderDate"`
	PaymentDate    time.Time          `bson:"paymentDate" json:"paymentDate"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	ProductTotal   int64              `bson:"productTotal" json:"productTotal"`
	DiscountAmount int64              `bson:"discountAmount" json:"discountAmount"`
	FinalAmount    int64              `bson:"finalAmount" json:"finalAmount"`
	PaymentMethod  PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
}
