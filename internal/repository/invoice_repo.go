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

type InvoiceRepository struct {
	mgr *database.Manager
}

func NewInvoiceRepository(mgr *database.Manager) *InvoiceRepository {
	return &InvoiceRepository{mgr: mgr}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	col, err := collection(r.mgr, database.CollectionInvoices)
	if err != nil {
		return err
	}
	_, err = col.InsertOne(ctx, invoice)
	return err
}

func (r *InvoiceRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	col, err := collection(r.mgr, database.CollectionInvoices)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Invoice, error) {
	col, err := collection(r.mgr, database.CollectionInvoices)
	if err != nil {
		return nil, err
	}
	var invoice models.Invoice
	err = col.FindOne(ctx, bson.D{{Key: "orderId", Value: orderID}}).Decode(&invoice)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
