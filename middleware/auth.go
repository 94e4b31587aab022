package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant-manager-api/config"
	"restaurant-manager-api/models"
	"restaurant-manager-api/responses"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

const claimsKey = "authClaims"

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

func parseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthRequired validates the bearer token and injects claims into context.
// The reason for a rejection goes into the error list and the log, but the
// status is a uniform 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				responses.NewError(http.StatusUnauthorized, "Unauthorized access", "Bearer token is required"))
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				responses.NewError(http.StatusUnauthorized, "Unauthorized access", "Invalid token format"))
			return
		}
		claims, err := parseToken(tokenStr)
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				responses.NewError(http.StatusUnauthorized, "Unauthorized access", "Invalid token"))
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims extracts the verified token claims from context.
func GetClaims(c *gin.Context) *Claims {
	val, _ := c.Get(claimsKey)
	claims, _ := val.(*Claims)
	return claims
}

// UserOnly re-reads the acting user by the id embedded in the verified
// token. An absent user means the account was removed after the token was
// minted.
func UserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.UserID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				responses.NewError(http.StatusBadRequest, "User ID is required", "userId is missing in token claims"))
			return
		}

		var user models.User
		err := config.DB.First(&user, "id = ?", claims.UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				responses.NewError(http.StatusForbidden, "Access Denied", "Only registered users are allowed to access this resource"))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
			return
		}
		c.Next()
	}
}

// AdminOnly re-reads the acting user by the id supplied in the request body
// and requires the ADMIN role. The body is restored afterwards so handlers
// can bind it again.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				responses.NewError(http.StatusBadRequest, "Invalid request data", err.Error()))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var payload struct {
			UserID string `json:"userId"`
		}
		if err := json.Unmarshal(body, &payload); err != nil || payload.UserID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				responses.NewError(http.StatusBadRequest, "User ID is required", "userId is missing in request body"))
			return
		}

		var user models.User
		err = config.DB.First(&user, "id = ?", payload.UserID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
			return
		}
		if err != nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				responses.NewError(http.StatusForbidden, "Access Denied", "Only administrators are allowed to access this resource"))
			return
		}
		c.Next()
	}
}
