package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type ReviewHandler struct {
	repo *repository.ReviewRepository
}

func NewReviewHandler(repo *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

// ListByBook returns reviews for a product by ISBN.
// GET /api/reviews/:isbn
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	isbn, err := strconv.ParseInt(c.Param("isbn"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid ISBN")
		return
	}

	reviews, err := h.repo.GetByBookID(c.Request.Context(), isbn)
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Reviews retrieved successfully", reviews)
}

// Create adds a review for a product.
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
		BookID  int64  `json:"bookId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	review := &models.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
		BookID:  req.BookID,
	}
	if err := h.repo.Create(c.Request.Context(), review); err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 201, "Review created successfully", review)
}
