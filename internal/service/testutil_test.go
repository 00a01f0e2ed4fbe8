package service_test

import (
	"testing"

	"gorm.io/gorm"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

type testServices struct {
	db      *gorm.DB
	recipes *service.RecipeService
	plans   *service.MealPlanService
	entries *service.MealPlanEntryService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := testhelpers.OpenTestDB(t)
	plans := service.NewMealPlanService(db)
	return &testServices{
		db:      db,
		recipes: service.NewRecipeService(db),
		plans:   plans,
		entries: service.NewMealPlanEntryService(db, plans),
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
