package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	orderRepo   *repository.OrderRepository
	userRepo    *repository.UserRepository
}

func NewInvoiceService(
	invoiceRepo *repository.InvoiceRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

// CreateForOrder derives the invoice for an order: customer name/email are
// copied from the order's owning user, and amounts reconcile against the
// order without re-reading the product table. One invoice per order.
func (s *InvoiceService) CreateForOrder(ctx context.Context, orderID primitive.ObjectID, discount int64) (*models.Invoice, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.invoiceRepo.GetByOrderID(ctx, order.ID.Hex()); err == nil && existing != nil {
		return existing, nil
	}

	owner, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	invoice, err := DeriveInvoice(order, owner, discount)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", invoice.OrderID).
		Int64("final_amount", invoice.FinalAmount).
		Msg("Invoice created")
	return invoice, nil
}

// DeriveInvoice builds the invoice record for an order. The discount may not
// exceed the order total; finalAmount never goes negative.
func DeriveInvoice(order *models.Order, owner *models.User, discount int64) (*models.Invoice, error) {
	if discount < 0 || discount > order.TotalAmount {
		return nil, utils.ErrInvalidDiscount
	}
	return &models.Invoice{
		OrderID:        order.ID.Hex(),
		OrderDate:      order.OrderDate,
		PaymentDate:    order.OrderDate,
		FullName:       owner.FullName,
		Email:          owner.Email,
		ProductTotal:   order.TotalAmount,
		DiscountAmount: discount,
		FinalAmount:    order.TotalAmount - discount,
		PaymentMethod:  order.PaymentMethod,
	}, nil
}
