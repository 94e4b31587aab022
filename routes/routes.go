package routes

import (
	"restaurant-manager-api/handlers"
	"restaurant-manager-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	// ── User routes (public) ───────────────────────────────────────
	user := api.Group("/user")
	{
		user.POST("/create", handlers.CreateUser)
		user.POST("/login", handlers.Login)
	}

	// ── Menu routes (staff) ────────────────────────────────────────
	menu := api.Group("/menu")
	menu.Use(middleware.AuthRequired(), middleware.UserOnly())
	{
		menu.POST("/addCategory", middleware.AdminOnly(), handlers.AddCategory)
		menu.GET("/getCategories", handlers.GetCategories)
		menu.POST("/addFoodItem", middleware.AdminOnly(), handlers.AddFoodItem)
		menu.GET("/getFoodItems", handlers.GetFoodItems)
	}

	// ── Open menu routes (public read-only mirror) ─────────────────
	open := api.Group("/openMenu")
	{
		open.GET("/getCategories", handlers.GetCategories)
		open.GET("/getFoodItems", handlers.GetFoodItems)
	}

	// ── Table routes (staff) ───────────────────────────────────────
	table := api.Group("/table")
	table.Use(middleware.AuthRequired(), middleware.UserOnly())
	{
		table.POST("/addTable", middleware.AdminOnly(), handlers.AddTable)
		table.GET("/getTables", handlers.GetTables)
		table.PUT("/updateTable", middleware.AdminOnly(), handlers.UpdateTable)
		table.DELETE("/deleteTable", handlers.DeleteTable)
	}
}
