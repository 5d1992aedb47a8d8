package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/middleware"
	"github.com/puttdental/backend-allotment/models"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// Login checks the submitted PIN against the configured front-desk and admin
// credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "username and pin are required",
		})
		return
	}

	role := ""
	switch {
	case h.config.AdminPIN != "" && req.PIN == h.config.AdminPIN:
		role = "admin"
	case h.config.DashboardPIN != "" && req.Username == h.config.DashboardUser && req.PIN == h.config.DashboardPIN:
		role = "frontdesk"
	}

	if role == "" {
		fmt.Printf("[AuthHandler] Login rejected for user %s\n", req.Username)
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	claims := middleware.Claims{
		Username: req.Username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.LoginResponse{
			Token:    signed,
			Username: req.Username,
			Role:     role,
		},
	})
}

// GetMe returns the identity carried by the validated token.
func (h *AuthHandler) GetMe(c *gin.Context) {
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: gin.H{
			"username": username,
			"role":     role,
		},
	})
}
