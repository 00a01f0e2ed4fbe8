package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
)

// MealPlanEntryService handles meal-plan entries. Entry access always
// routes through the plan ownership guard.
type MealPlanEntryService struct {
	db    *gorm.DB
	plans *MealPlanService
}

func NewMealPlanEntryService(db *gorm.DB, plans *MealPlanService) *MealPlanEntryService {
	return &MealPlanEntryService{db: db, plans: plans}
}

// UpsertMealPlanEntryInput creates an entry when ID is nil and fully
// replaces the entry's mutable fields when ID is set. Omitted optional
// fields reset on the update branch; this is a replace, not a merge.
type UpsertMealPlanEntryInput struct {
	ID          *uuid.UUID `json:"id"`
	MealPlanID  uuid.UUID  `json:"meal_plan_id"`
	Date        time.Time  `json:"date"`
	MealSlot    string     `json:"meal_slot"`
	RecipeID    *uuid.UUID `json:"recipe_id"`
	CustomTitle string     `json:"custom_title"`
	Notes       string     `json:"notes"`
}

func (s *MealPlanEntryService) UpsertMealPlanEntry(ctx context.Context, userID uuid.UUID, in UpsertMealPlanEntryInput) (*models.MealPlanEntry, error) {
	if in.MealPlanID == uuid.Nil {
		return nil, invalid("meal_plan_id", "meal_plan_id is required")
	}
	if in.Date.IsZero() {
		return nil, invalid("date", "date is required")
	}
	if strings.TrimSpace(in.MealSlot) == "" {
		return nil, invalid("meal_slot", "meal_slot is required")
	}

	if _, err := s.plans.OwnedPlan(ctx, userID, in.MealPlanID); err != nil {
		return nil, err
	}

	if in.ID != nil {
		var entry models.MealPlanEntry
		err := s.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", *in.ID, userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		entry.MealPlanID = in.MealPlanID
		entry.Date = in.Date
		entry.MealSlot = in.MealSlot
		entry.RecipeID = in.RecipeID
		entry.CustomTitle = in.CustomTitle
		entry.Notes = in.Notes

		// Save writes every column, so cleared fields persist as empty.
		if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
			return nil, err
		}
		return &entry, nil
	}

	entry := models.MealPlanEntry{
		MealPlanID:  in.MealPlanID,
		UserID:      userID,
		Date:        in.Date,
		MealSlot:    in.MealSlot,
		RecipeID:    in.RecipeID,
		CustomTitle: in.CustomTitle,
		Notes:       in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MealPlanEntryService) DeleteMealPlanEntry(ctx context.Context, userID, id uuid.UUID) error {
	var entry models.MealPlanEntry
	err := s.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.MealPlanEntry{}, "id = ? AND user_id = ?", id, userID).Error
}

// ListMealPlanEntries returns all entries of one of the caller's plans.
func (s *MealPlanEntryService) ListMealPlanEntries(ctx context.Context, userID, planID uuid.UUID) ([]models.MealPlanEntry, error) {
	if planID == uuid.Nil {
		return nil, invalid("meal_plan_id", "meal_plan_id is required")
	}
	if _, err := s.plans.OwnedPlan(ctx, userID, planID); err != nil {
		return nil, err
	}

	var entries []models.MealPlanEntry
	if err := s.db.WithContext(ctx).Where("meal_plan_id = ? AND user_id = ?", planID, userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
