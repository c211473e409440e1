package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type CouponHandler struct {
	repo *repository.CouponRepository
}

func NewCouponHandler(repo *repository.CouponRepository) *CouponHandler {
	return &CouponHandler{repo: repo}
}

// List returns all coupons.
// GET /api/coupons
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Coupons retrieved successfully", coupons)
}

// Get returns one coupon by promo code.
// GET /api/coupons/:promoId
func (h *CouponHandler) Get(c *gin.Context) {
	coupon, err := h.repo.GetByPromoID(c.Request.Context(), c.Param("promoId"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Coupon not found")
			return
		}
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Coupon retrieved successfully", coupon)
}

// Create adds a coupon.
// POST /api/coupons (admin)
func (h *CouponHandler) Create(c *gin.Context) {
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.repo.Create(c.Request.Context(), &coupon); err != nil {
		if errors.Is(err, utils.ErrDuplicatePromoID) {
			utils.Error(c, 409, "DUPLICATE_PROMO_ID", "Promo code already exists")
			return
		}
		c.Error(err)
		return
	}
	utils.Success(c, 201, "Coupon created successfully", coupon)
}
