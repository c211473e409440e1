package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

func testOrder(total int64) *models.Order {
	now := time.Now().UTC()
	return &models.Order{
		ID:            primitive.NewObjectID(),
		UserID:        primitive.NewObjectID(),
		TotalAmount:   total,
		OrderDate:     now,
		PaymentMethod: models.PaymentCOD,
		Status:        models.OrderStatusPending,
	}
}

func TestDeriveInvoiceReconcilesAmounts(t *testing.T) {
	order := testOrder(240000)
	owner := &models.User{
		FullName: "Người Dùng 1",
		Email:    "user1@timsachnhabe.com",
	}

	invoice, err := DeriveInvoice(order, owner, 10000)
	require.NoError(t, err)

	assert.Equal(t, order.ID.Hex(), invoice.OrderID)
	assert.Equal(t, owner.FullName, invoice.FullName)
	assert.Equal(t, owner.Email, invoice.Email)
	assert.Equal(t, int64(240000), invoice.ProductTotal)
	assert.Equal(t, int64(10000), invoice.DiscountAmount)
	assert.Equal(t, int64(230000), invoice.FinalAmount)
	assert.Equal(t, order.PaymentMethod, invoice.PaymentMethod)
}

func TestDeriveInvoiceRejectsBadDiscounts(t *testing.T) {
	owner := &models.User{FullName: "x", Email: "x@y.z"}

	_, err := DeriveInvoice(testOrder(1000), owner, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidDiscount)

	// finalAmount may never go negative.
	_, err = DeriveInvoice(testOrder(1000), owner, 1001)
	assert.ErrorIs(t, err, utils.ErrInvalidDiscount)

	invoice, err := DeriveInvoice(testOrder(1000), owner, 1000)
	require.NoError(t, err)
	assert.Zero(t, invoice.FinalAmount)
}
