package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodCategory groups food items on the menu. The category name must be
// unique per owning user under case-insensitive comparison, so the column
// carries the NOCASE collation and the unique index picks it up.
type FoodCategory struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	CategoryName string    `json:"categoryName" gorm:"type:TEXT COLLATE NOCASE;not null;uniqueIndex:idx_categories_owner_name,priority:2"`
	UserID       string    `json:"userId" gorm:"not null;uniqueIndex:idx_categories_owner_name,priority:1"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *FoodCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// FoodVariant is a named add-on of a food item (e.g. size or portion).
// Variants are stored inline on the item as a JSON column so their order
// is preserved.
type FoodVariant struct {
	Name            string  `json:"name"`
	AdditionalPrice float64 `json:"additionalPrice"`
	Available       bool    `json:"available"`
}

type FoodItem struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	FoodName    string        `json:"foodName" gorm:"not null;uniqueIndex:idx_food_items_name_owner,priority:1"`
	Price       float64       `json:"price" gorm:"not null"`
	CategoryID  string        `json:"categoryId" gorm:"not null"`
	Category    *FoodCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	UserID      string        `json:"userId" gorm:"not null;uniqueIndex:idx_food_items_name_owner,priority:2"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags" gorm:"serializer:json;type:text"`
	IsAvailable bool          `json:"isAvailable" gorm:"default:true"`
	Variants    []FoodVariant `json:"variants" gorm:"serializer:json;type:text"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
