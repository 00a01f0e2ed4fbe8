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

// MealPlanService handles meal-plan operations, including the ownership
// guard shared with the entry service.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

type CreateMealPlanInput struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type UpdateMealPlanInput struct {
	ID        uuid.UUID  `json:"id"`
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// OwnedPlan is the ownership guard: it returns the plan only when it
// both exists and belongs to the given user, and ErrNotFound otherwise.
// A mismatch is indistinguishable from a missing plan.
func (s *MealPlanService) OwnedPlan(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).First(&plan, "id = ? AND user_id = ?", planID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, in CreateMealPlanInput) (*models.MealPlan, error) {
	plan := models.MealPlan{
		UserID:    userID,
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateMealPlan merges the provided fields into the caller's plan.
func (s *MealPlanService) UpdateMealPlan(ctx context.Context, userID uuid.UUID, in UpdateMealPlanInput) (*models.MealPlan, error) {
	if in.ID == uuid.Nil {
		return nil, invalid("id", "id is required")
	}
	if in.Name == nil && in.StartDate == nil && in.EndDate == nil {
		return nil, invalid("", "at least one field must be provided to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, invalid("name", "name must not be empty")
	}

	plan, err := s.OwnedPlan(ctx, userID, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		plan.Name = *in.Name
	}
	if in.StartDate != nil {
		plan.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		plan.EndDate = in.EndDate
	}

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteMealPlan removes the caller's plan. Entries are left in place;
// they become unreachable through the API once their plan is gone.
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.OwnedPlan(ctx, userID, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.MealPlan{}, "id = ? AND user_id = ?", id, userID).Error
}

func (s *MealPlanService) ListMealPlans(ctx context.Context, userID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
