package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlan is a user-owned plan covering an optional date range. The
// range endpoints are independent; no ordering between them is enforced.
type MealPlan struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string     `gorm:"size:255" json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// MealPlanEntry places a recipe (or a free-form custom title) into a
// meal slot on a given day of a plan. UserID duplicates the plan
// owner's id so every entry query stays scoped to one user. RecipeID
// may reference any recipe, including another user's; deleting a plan
// does not cascade to its entries.
type MealPlanEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	MealPlanID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"meal_plan_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time  `gorm:"not null" json:"date"`
	MealSlot    string     `gorm:"size:50;not null" json:"meal_slot"`
	RecipeID    *uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	CustomTitle string     `gorm:"size:255" json:"custom_title"`
	Notes       string     `gorm:"type:text" json:"notes"`
}

func (e *MealPlanEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
