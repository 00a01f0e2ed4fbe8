package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a user-owned recipe. The nutrition fields are optional and
// nullable so an unset value is distinguishable from an explicit zero.
type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Cuisine      string    `gorm:"size:100" json:"cuisine"`
	MealType     string    `gorm:"size:50" json:"meal_type"`
	Tags         string    `gorm:"type:text" json:"tags"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	Calories     *int      `json:"calories"`
	ProteinGrams *int      `json:"protein_grams"`
	CarbsGrams   *int      `json:"carbs_grams"`
	FatGrams     *int      `json:"fat_grams"`
	PhotoURL     string    `gorm:"size:255" json:"photo_url"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
