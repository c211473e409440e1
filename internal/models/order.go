package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod enumerates supported payment methods.
type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "COD"
	PaymentVNPay PaymentMethod = "VNPAY"
)

// OrderItem is one line of an order, referencing a product by internal
// identity with the quantity purchased.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order represents a placed order. TotalAmount is the sum of unit price ×
// quantity over the line items, evaluated at creation time.
// ShippingAddress is copied from the user at creation, not a live reference.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"products" json:"products"`
	TotalAmount     int64              `bson:"totalAmount" json:"totalAmount"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	PaymentMethod   PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	ShippingAddress string             `bson:"shippingAddress" json:"shippingAddress"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
