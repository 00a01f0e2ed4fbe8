package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
)

// RecipeService handles recipe operations. Every query is scoped by the
// caller's user id.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipeInput carries the fields accepted by CreateRecipe.
type CreateRecipeInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Cuisine      string `json:"cuisine"`
	MealType     string `json:"meal_type"`
	Tags         string `json:"tags"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Calories     *int   `json:"calories"`
	ProteinGrams *int   `json:"protein_grams"`
	CarbsGrams   *int   `json:"carbs_grams"`
	FatGrams     *int   `json:"fat_grams"`
}

// UpdateRecipeInput carries a partial update. Pointer fields distinguish
// "not provided" from an explicit value; nil leaves the stored field
// unchanged.
type UpdateRecipeInput struct {
	ID           uuid.UUID `json:"id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Cuisine      *string   `json:"cuisine"`
	MealType     *string   `json:"meal_type"`
	Tags         *string   `json:"tags"`
	Ingredients  *string   `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	Calories     *int      `json:"calories"`
	ProteinGrams *int      `json:"protein_grams"`
	CarbsGrams   *int      `json:"carbs_grams"`
	FatGrams     *int      `json:"fat_grams"`
}

func (in *UpdateRecipeInput) hasChanges() bool {
	return in.Title != nil || in.Description != nil || in.Cuisine != nil ||
		in.MealType != nil || in.Tags != nil || in.Ingredients != nil ||
		in.Instructions != nil || in.Calories != nil || in.ProteinGrams != nil ||
		in.CarbsGrams != nil || in.FatGrams != nil
}

func validateNutrition(calories, protein, carbs, fat *int) error {
	if calories != nil && *calories <= 0 {
		return invalid("calories", "calories must be a positive integer")
	}
	if protein != nil && *protein < 0 {
		return invalid("protein_grams", "protein_grams must not be negative")
	}
	if carbs != nil && *carbs < 0 {
		return invalid("carbs_grams", "carbs_grams must not be negative")
	}
	if fat != nil && *fat < 0 {
		return invalid("fat_grams", "fat_grams must not be negative")
	}
	return nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, in CreateRecipeInput) (*models.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "title is required")
	}
	if err := validateNutrition(in.Calories, in.ProteinGrams, in.CarbsGrams, in.FatGrams); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		Cuisine:      in.Cuisine,
		MealType:     in.MealType,
		Tags:         in.Tags,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Calories:     in.Calories,
		ProteinGrams: in.ProteinGrams,
		CarbsGrams:   in.CarbsGrams,
		FatGrams:     in.FatGrams,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe retrieves one of the caller's recipes by id.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe merges the provided fields into the caller's recipe. The
// returned record is the pre-update read with the provided fields
// applied; it is not re-fetched after the write.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID uuid.UUID, in UpdateRecipeInput) (*models.Recipe, error) {
	if in.ID == uuid.Nil {
		return nil, invalid("id", "id is required")
	}
	if !in.hasChanges() {
		return nil, invalid("", "at least one field must be provided to update")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, invalid("title", "title must not be empty")
	}
	if err := validateNutrition(in.Calories, in.ProteinGrams, in.CarbsGrams, in.FatGrams); err != nil {
		return nil, err
	}

	recipe, err := s.GetRecipe(ctx, userID, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Cuisine != nil {
		recipe.Cuisine = *in.Cuisine
	}
	if in.MealType != nil {
		recipe.MealType = *in.MealType
	}
	if in.Tags != nil {
		recipe.Tags = *in.Tags
	}
	if in.Ingredients != nil {
		recipe.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		recipe.Instructions = *in.Instructions
	}
	if in.Calories != nil {
		recipe.Calories = in.Calories
	}
	if in.ProteinGrams != nil {
		recipe.ProteinGrams = in.ProteinGrams
	}
	if in.CarbsGrams != nil {
		recipe.CarbsGrams = in.CarbsGrams
	}
	if in.FatGrams != nil {
		recipe.FatGrams = in.FatGrams
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes the caller's recipe and returns ErrNotFound when
// it does not exist or belongs to someone else. Entries referencing the
// recipe keep their recipe id.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, userID, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ? AND user_id = ?", id, userID).Error
}

// ListRecipes returns all of the caller's recipes, unordered. An
// optional query filters on title, cuisine and tags.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, query string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	db := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(cuisine) LIKE ? OR LOWER(tags) LIKE ?", like, like, like)
	}
	if err := db.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetPhotoURL stores the S3 URL of an uploaded recipe photo.
func (s *RecipeService) SetPhotoURL(ctx context.Context, userID, id uuid.UUID, url string) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	recipe.PhotoURL = url
	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}
