package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/cache"
	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type ProductHandler struct {
	repo  *repository.ProductRepository
	cache *cache.ProductCache
}

func NewProductHandler(repo *repository.ProductRepository, cache *cache.ProductCache) *ProductHandler {
	return &ProductHandler{repo: repo, cache: cache}
}

// List returns products, optionally filtered by catalog code.
// GET /api/products?catalog=FIC
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	catalog := c.Query("catalog")

	if products, ok := h.cache.GetList(ctx, catalog); ok {
		utils.Success(c, 200, "Products retrieved successfully", products)
		return
	}

	products, err := h.repo.GetAll(ctx, catalog)
	if err != nil {
		c.Error(err)
		return
	}
	h.cache.SetList(ctx, catalog, products)

	utils.Success(c, 200, "Products retrieved successfully", products)
}

// GetByISBN returns one product by its external identifier.
// GET /api/products/:isbn
func (h *ProductHandler) GetByISBN(c *gin.Context) {
	isbn, err := strconv.ParseInt(c.Param("isbn"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid ISBN")
		return
	}

	product, err := h.repo.GetByISBN(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

// Create adds a product.
// POST /api/products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, &product); err != nil {
		c.Error(err)
		return
	}
	h.cache.Invalidate(ctx, product.Catalog)

	utils.Success(c, 201, "Product created successfully", product)
}

// Update replaces the mutable fields of a product.
// PUT /api/products/:isbn (admin)
func (h *ProductHandler) Update(c *gin.Context) {
	isbn, err := strconv.ParseInt(c.Param("isbn"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid ISBN")
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	if err := h.repo.Update(ctx, isbn, &product); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		c.Error(err)
		return
	}
	h.cache.Invalidate(ctx, product.Catalog)

	utils.Success(c, 200, "Product updated successfully", product)
}

// Delete removes a product.
// DELETE /api/products/:isbn (admin)
func (h *ProductHandler) Delete(c *gin.Context) {
	isbn, err := strconv.ParseInt(c.Param("isbn"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid ISBN")
		return
	}

	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, isbn); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		c.Error(err)
		return
	}
	h.cache.Invalidate(ctx, "")

	utils.Success(c, 200, "Product deleted successfully", nil)
}
