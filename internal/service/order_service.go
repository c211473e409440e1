package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type OrderService struct {
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
	userRepo    *repository.UserRepository
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// CreateOrder places an order for the given user. The total is computed
// from the referenced products' current prices, and the user's address is
// copied onto the order as the shipping address.
func (s *OrderService) CreateOrder(ctx context.Context, userID primitive.ObjectID, items []models.OrderItem, payment models.PaymentMethod) (*models.Order, error) {
	if len(items) == 0 {
		return nil, utils.ErrEmptyOrder
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	prices := make(map[primitive.ObjectID]int64, len(products))
	stock := make(map[primitive.ObjectID]int, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
		stock[p.ID] = p.Stock
	}

	for _, item := range items {
		if _, ok := prices[item.ProductID]; !ok {
			return nil, utils.ErrProductNotFound
		}
		if item.Quantity <= 0 || item.Quantity > stock[item.ProductID] {
			return nil, utils.ErrInsufficientStock
		}
	}

	now := time.Now().UTC()
	order := &models.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     ComputeTotal(items, prices),
		OrderDate:       now,
		PaymentMethod:   payment,
		ShippingAddress: user.Address,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", order.ID.Hex()).
		Str("user_id", userID.Hex()).
		Int64("total", order.TotalAmount).
		Msg("Order created")
	return order, nil
}

// ComputeTotal sums unit price × quantity over the line items using the
// provided price table. Items without a price entry contribute nothing;
// callers validate item references before computing.
func ComputeTotal(items []models.OrderItem, prices map[primitive.ObjectID]int64) int64 {
	var total int64
	for _, item := range items {
		total += prices[item.ProductID] * int64(item.Quantity)
	}
	return total
}
