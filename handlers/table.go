package handlers

import (
	"errors"
	"net/http"

	"restaurant-manager-api/config"
	"restaurant-manager-api/models"
	"restaurant-manager-api/responses"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AddTableRequest struct {
	TableName       string `json:"tableName" binding:"required"`
	SeatingCapacity *int   `json:"seatingCapacity" binding:"required,gte=1"`
	Available       *bool  `json:"available"`
	UserID          string `json:"userId" binding:"required"`
}

type UpdateTableRequest struct {
	ID              string  `json:"id" binding:"required"`
	TableName       *string `json:"tableName"`
	SeatingCapacity *int    `json:"seatingCapacity" binding:"omitempty,gte=1"`
	Available       *bool   `json:"available"`
}

type DeleteTableRequest struct {
	ID string `json:"id" binding:"required"`
}

// AddTable creates a restaurant table. Table names are globally unique.
func AddTable(c *gin.Context) {
	var req AddTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, "Invalid request data", fieldErrors(err)...))
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	table := models.Table{
		TableName:       req.TableName,
		SeatingCapacity: *req.SeatingCapacity,
		Available:       available,
		UserID:          req.UserID,
	}
	if err := config.DB.Create(&table).Error; err != nil {
		if field, ok := duplicateField(err); ok {
			c.JSON(http.StatusConflict,
				responses.NewError(http.StatusConflict, field+" already in use", err.Error()))
			return
		}
		log.Error().Err(err).Msg("table insert failed")
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated,
		responses.New(http.StatusCreated, table, "Table created successfully"))
}

// GetTables returns every table.
func GetTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK,
		responses.New(http.StatusOK, tables, "Tables fetched successfully"))
}

// UpdateTable applies the provided fields to an existing table.
func UpdateTable(c *gin.Context) {
	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, "Invalid request data", fieldErrors(err)...))
		return
	}

	var table models.Table
	if err := config.DB.First(&table, "id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound,
				responses.NewError(http.StatusNotFound, "Table not found"))
			return
		}
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	update := map[string]interface{}{}
	if req.TableName != nil {
		update["table_name"] = *req.TableName
	}
	if req.SeatingCapacity != nil {
		update["seating_capacity"] = *req.SeatingCapacity
	}
	if req.Available != nil {
		update["available"] = *req.Available
	}
	if len(update) == 0 {
		c.JSON(http.StatusOK,
			responses.New(http.StatusOK, table, "Table updated successfully"))
		return
	}
	if err := config.DB.Model(&table).Updates(update).Error; err != nil {
		if field, ok := duplicateField(err); ok {
			c.JSON(http.StatusConflict,
				responses.NewError(http.StatusConflict, field+" already in use", err.Error()))
			return
		}
		log.Error().Err(err).Msg("table update failed")
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK,
		responses.New(http.StatusOK, table, "Table updated successfully"))
}

// DeleteTable removes a table by id.
func DeleteTable(c *gin.Context) {
	var req DeleteTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			responses.NewError(http.StatusBadRequest, "Invalid request data", fieldErrors(err)...))
		return
	}

	result := config.DB.Delete(&models.Table{}, "id = ?", req.ID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError,
			responses.NewError(http.StatusInternalServerError, "Server error", result.Error.Error()))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound,
			responses.NewError(http.StatusNotFound, "Table not found"))
		return
	}

	c.JSON(http.StatusOK,
		responses.New(http.StatusOK, nil, "Table deleted successfully"))
}
