package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type UserHandler struct {
	repo *repository.UserRepository
}

func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// List returns all accounts.
// GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Users retrieved successfully", users)
}

// Me returns the authenticated user's profile.
// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	user, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "User not found")
			return
		}
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Profile retrieved successfully", user)
}

// UpdateMe updates the authenticated user's profile fields.
// PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req struct {
		FullName    string `json:"fullName" binding:"required"`
		PhoneNumber string `json:"phoneNumber"`
		Address     string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), userID, req.FullName, req.PhoneNumber, req.Address); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "User not found")
			return
		}
		c.Error(err)
		return
	}
	utils.Success(c, 200, "Profile updated successfully", nil)
}
