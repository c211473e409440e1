package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/service"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		FullName    string `json:"fullName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		PhoneNumber string `json:"phoneNumber"`
		Address     string `json:"address"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.FullName, req.Email, req.Password, req.PhoneNumber, req.Address)
	if err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			utils.Error(c, 409, "EMAIL_TAKEN", "Email is already registered")
			return
		}
		c.Error(err)
		return
	}

	utils.Success(c, 201, "Registration successful", user)
}

// Login exchanges credentials for a JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		c.Error(err)
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
