package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Table struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	TableName       string    `json:"tableName" gorm:"uniqueIndex;not null"`
	SeatingCapacity int       `json:"seatingCapacity" gorm:"not null"`
	Available       bool      `json:"available" gorm:"default:true"`
	UserID          string    `json:"userId" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
