package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/service"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type OrderHandler struct {
	orderService *service.OrderService
	orderRepo    *repository.OrderRepository
}

func NewOrderHandler(orderService *service.OrderService, orderRepo *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orderService: orderService, orderRepo: orderRepo}
}

// Create places an order for the authenticated user.
// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req struct {
		Items         []models.OrderItem   `json:"products" binding:"required"`
		PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req.Items, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyOrder):
			utils.Error(c, 400, "EMPTY_ORDER", "Order must contain at least one item")
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Referenced product does not exist")
		case errors.Is(err, utils.ErrInsufficientStock):
			utils.Error(c, 409, "INSUFFICIENT_STOCK", "Requested quantity exceeds stock")
		default:
			c.Error(err)
		}
		return
	}

	utils.Success(c, 201, "Order created successfully", order)
}

// ListMine returns the authenticated user's orders.
// GET /api/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderRepo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Orders retrieved successfully", orders)
}

// Get returns one order; only its owner or an admin may read it.
// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return
	}

	order, err := h.orderRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		c.Error(err)
		return
	}

	if order.UserID != userID && c.GetString("role") != string(models.RoleAdmin) {
		utils.Error(c, 403, "FORBIDDEN", "Not your order")
		return
	}

	utils.Success(c, 200, "Order retrieved successfully", order)
}

// ListAll returns every order.
// GET /api/orders/all (admin)
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderRepo.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Orders retrieved successfully", orders)
}

// UpdateStatus changes an order's status.
// PUT /api/orders/:id/status (admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.orderRepo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		c.Error(err)
		return
	}

	utils.Success(c, 200, "Order status updated successfully", nil)
}

// authenticatedUserID reads the caller's id injected by the JWT middleware.
func authenticatedUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Invalid authenticated user")
		return primitive.NilObjectID, false
	}
	return id, true
}
