package handlers

import (
	"net/http"

	"restaurant-manager-api/config"
	"restaurant-manager-api/models"
	"restaurant-manager-api/responses"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AddCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
}

type CategoryPayload struct {
	CategoryID   string `json:"categoryId" binding:"required"`
	CategoryName string `json:"categoryName" binding:"required"`
}

type FoodVariantPayload struct {
	Name            string   `json:"name" binding:"required"`
	AdditionalPrice *float64 `json:"additionalPrice" binding:"required,gte=0"`
	Available       *bool    `json:"available"`
}

type AddFoodItemRequest struct {
	FoodName    string               `json:"foodName" binding:"required"`
	Price       *float64             `json:"price" binding:"required,gte=0"`
	Category    CategoryPayload      `json:"category" binding:"required"`
	UserID      string               `json:"userId" binding:"required"`
	Description string               `json:"description"`
	Tags        []string             `json:"tags"`
	IsAvailable *bool                `json:"isAvailable"`
	Variants    []FoodVariantPayload `json:"variants" binding:"omitempty,dive"`
}

// CategoryView is the wire shape list endpoints return for a category.
type CategoryView struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// FoodItemView is the wire shape list endpoints return for a food item,
// with the category populated inline.
type FoodItemView struct {
	FoodName    string               `json:"foodName"`
	Price       float64              `json:"price"`
	Category    CategoryView         `json:"category"`
	UserID      string               `json:"userId"`
	Description string               `json:"description"`
	Tags        []string             `json:"tags"`
	IsAvailable bool                 `json:"isAvailable"`
	Variants    []models.FoodVariant `json:"variants"`
}

// AddCategory creates a menu category owned by the acting user. Category
// names collide case-insensitively per owner.
func AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, "Invalid request data", fieldErrors(err)...))
		return
	}

	category := models.FoodCategory{
		CategoryName: req.CategoryName,
		UserID:       req.UserID,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		if field, ok := duplicateField(err); ok {
			c.JSON(http.StatusConflict,
				responses.NewError(http.StatusConflict, field+" already in use", err.Error()))
			return
		}
		log.Error().Err(err).Msg("category insert failed")
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated,
		responses.New(http.StatusCreated, category, "Category created successfully"))
}

// GetCategories returns every category. Owner scoping is recorded on write
// but not applied here.
func GetCategories(c *gin.Context) {
	var categories []models.FoodCategory
	if err := config.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	views := make([]CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, CategoryView{CategoryID: cat.ID, CategoryName: cat.CategoryName})
	}
	c.JSON(http.StatusOK,
		responses.New(http.StatusOK, views, "Categories fetched successfully"))
}

// AddFoodItem creates a food item under an existing category. Food names
// collide per owner.
func AddFoodItem(c *gin.Context) {
	var req AddFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, "Invalid request data", fieldErrors(err)...))
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}
	variants := make([]models.FoodVariant, 0, len(req.Variants))
	for _, v := range req.Variants {
		available := true
		if v.Available != nil {
			available = *v.Available
		}
		variants = append(variants, models.FoodVariant{
			Name:            v.Name,
			AdditionalPrice: *v.AdditionalPrice,
			Available:       available,
		})
	}

	item := models.FoodItem{
		FoodName:    req.FoodName,
		Price:       *req.Price,
		CategoryID:  req.Category.CategoryID,
		UserID:      req.UserID,
		Description: req.Description,
		Tags:        req.Tags,
		IsAvailable: isAvailable,
		Variants:    variants,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		if field, ok := duplicateField(err); ok {
			c.JSON(http.StatusConflict,
				responses.NewError(http.StatusConflict, field+" already in use", err.Error()))
			return
		}
		log.Error().Err(err).Msg("food item insert failed")
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated,
		responses.New(http.StatusCreated, item, "Food item created successfully"))
}

// GetFoodItems returns every food item with its category populated.
func GetFoodItems(c *gin.Context) {
	var items []models.FoodItem
	if err := config.DB.Preload("Category").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	views := make([]FoodItemView, 0, len(items))
	for _, item := range items {
		view := FoodItemView{
			FoodName:    item.FoodName,
			Price:       item.Price,
			Category:    CategoryView{CategoryID: item.CategoryID},
			UserID:      item.UserID,
			Description: item.Description,
			Tags:        item.Tags,
			IsAvailable: item.IsAvailable,
			Variants:    item.Variants,
		}
		if item.Category != nil {
			view.Category.CategoryName = item.Category.CategoryName
		}
		if view.Tags == nil {
			view.Tags = []string{}
		}
		if view.Variants == nil {
			view.Variants = []models.FoodVariant{}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK,
		responses.New(http.StatusOK, views, "Food items fetched successfully"))
}
