package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"restaurant-manager-api/config"
	"restaurant-manager-api/responses"
	"restaurant-manager-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Set Gin mode
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Load .env and initialize database
	config.Load()
	config.InitDB()

	r := gin.New()

	// Unexpected panics become a generic 500 in the shared envelope
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Internal Server Error", fmt.Sprint(recovered)))
	}))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Manager API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := config.Port()
	log.Info().Msgf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
