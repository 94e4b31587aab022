package handlers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/models"
	"restaurant-manager-api/responses"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required,oneof=ADMIN WAITER CHEF"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateUser registers a staff account. The admin gate is route-level
// middleware, not enforced here.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// One aggregated message joining all violated-field messages
		msgs := fieldErrors(err)
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, strings.Join(msgs, "; "), msgs...))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if field, ok := duplicateField(err); ok {
			c.JSON(http.StatusConflict,
				responses.NewError(http.StatusConflict, field+" already in use", err.Error()))
			return
		}
		log.Error().Err(err).Msg("user insert failed")
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, responses.New(http.StatusCreated, gin.H{
		"username": user.Username,
		"email":    user.Email,
	}, "User created successfully"))
}

// Login authenticates by username and password and mints a bearer token.
// A missing user and a wrong password produce the same response, so the
// endpoint cannot be used to enumerate accounts.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msgs := fieldErrors(err)
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, "Invalid request data", msgs...))
		return
	}

	var user models.User
	err := config.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized,
			responses.NewError(http.StatusUnauthorized, "Credentials did not match"))
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, responses.New(http.StatusOK, gin.H{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"token":    token,
	}, "Login successful"))
}
