package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/models"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type CatalogHandler struct {
	repo *repository.CatalogRepository
}

func NewCatalogHandler(repo *repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// List returns all catalogs.
// GET /api/catalog
func (h *CatalogHandler) List(c *gin.Context) {
	catalogs, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Catalogs retrieved successfully", catalogs)
}

// Create adds a catalog.
// POST /api/catalog (admin)
func (h *CatalogHandler) Create(c *gin.Context) {
	var req struct {
		GenreID string `json:"genreID" binding:"required"`
		Name    string `json:"genre2nd" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	catalog := &models.Catalog{GenreID: req.GenreID, Name: req.Name}
	if err := h.repo.Create(c.Request.Context(), catalog); err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 201, "Catalog created successfully", catalog)
}
