package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/service"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	invoiceRepo    *repository.InvoiceRepository
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, invoiceRepo *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, invoiceRepo: invoiceRepo}
}

// Create derives the invoice for an order.
// POST /api/invoices (admin)
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		OrderID        string `json:"orderId" binding:"required"`
		DiscountAmount int64  `json:"discountAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return
	}

	invoice, err := h.invoiceService.CreateForOrder(c.Request.Context(), orderID, req.DiscountAmount)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrOrderNotFound):
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		case errors.Is(err, utils.ErrInvalidDiscount):
			utils.Error(c, 400, "INVALID_DISCOUNT", "Discount must be between 0 and the order total")
		default:
			c.Error(err)
		}
		return
	}

	utils.Success(c, 201, "Invoice created successfully", invoice)
}

// List returns all invoices.
// GET /api/invoices (admin)
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceRepo.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Invoices retrieved successfully", invoices)
}

// GetByOrder returns the invoice derived from one order.
// GET /api/invoices/order/:orderId
func (h *InvoiceHandler) GetByOrder(c *gin.Context) {
	invoice, err := h.invoiceRepo.GetByOrderID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Invoice not found")
			return
		}
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Invoice retrieved successfully", invoice)
}
