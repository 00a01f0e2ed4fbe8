package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

func TestCreateRecipeAndList(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	created, err := s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{
		Title:    "Lentil Soup",
		Cuisine:  "Turkish",
		Calories: intPtr(320),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	recipes, err := s.recipes.ListRecipes(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Lentil Soup", recipes[0].Title)
}

func TestCreateRecipeRequiresTitle(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)

	_, err := s.recipes.CreateRecipe(context.Background(), user.ID, service.CreateRecipeInput{Title: "  "})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	recipes, err := s.recipes.ListRecipes(context.Background(), user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestCreateRecipeNutritionValidation(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	_, err := s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{
		Title:    "Bad Calories",
		Calories: intPtr(0),
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{
		Title:        "Bad Protein",
		ProteinGrams: intPtr(-1),
	})
	require.ErrorAs(t, err, &ve)

	// zero grams are fine, only calories must be positive
	_, err = s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{
		Title:        "Zero Grams",
		ProteinGrams: intPtr(0),
	})
	assert.NoError(t, err)
}

func TestUpdateRecipeMergesProvidedFields(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	created, err := s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{
		Title:       "Original",
		Description: "keep me",
		Calories:    intPtr(250),
	})
	require.NoError(t, err)

	updated, err := s.recipes.UpdateRecipe(ctx, user.ID, service.UpdateRecipeInput{
		ID:    created.ID,
		Title: strPtr("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	require.NotNil(t, updated.Calories)
	assert.Equal(t, 250, *updated.Calories)

	fetched, err := s.recipes.GetRecipe(ctx, user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Title)
	assert.Equal(t, "keep me", fetched.Description)
}

func TestUpdateRecipeRequiresAtLeastOneField(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	created, err := s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{Title: "Untouched"})
	require.NoError(t, err)

	_, err = s.recipes.UpdateRecipe(ctx, user.ID, service.UpdateRecipeInput{ID: created.ID})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "at least one field")
}

func TestUpdateRecipeCrossUserMaskedAsNotFound(t *testing.T) {
	s := newTestServices(t)
	owner := testhelpers.CreateTestUser(t, s.db)
	intruder := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	created, err := s.recipes.CreateRecipe(ctx, owner.ID, service.CreateRecipeInput{Title: "Private"})
	require.NoError(t, err)

	_, err = s.recipes.UpdateRecipe(ctx, intruder.ID, service.UpdateRecipeInput{
		ID:    created.ID,
		Title: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	fetched, err := s.recipes.GetRecipe(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", fetched.Title)
}

func TestDeleteRecipeIsNotIdempotent(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	created, err := s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{Title: "Gone Soon"})
	require.NoError(t, err)

	require.NoError(t, s.recipes.DeleteRecipe(ctx, user.ID, created.ID))
	assert.ErrorIs(t, s.recipes.DeleteRecipe(ctx, user.ID, created.ID), service.ErrNotFound)
}

func TestDeleteRecipeCrossUserMaskedAsNotFound(t *testing.T) {
	s := newTestServices(t)
	owner := testhelpers.CreateTestUser(t, s.db)
	intruder := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	created, err := s.recipes.CreateRecipe(ctx, owner.ID, service.CreateRecipeInput{Title: "Mine"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.recipes.DeleteRecipe(ctx, intruder.ID, created.ID), service.ErrNotFound)

	_, err = s.recipes.GetRecipe(ctx, owner.ID, created.ID)
	assert.NoError(t, err)
}

func TestListRecipesScopedToUser(t *testing.T) {
	s := newTestServices(t)
	alice := testhelpers.CreateTestUser(t, s.db)
	bob := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	_, err := s.recipes.CreateRecipe(ctx, alice.ID, service.CreateRecipeInput{Title: "Alice's"})
	require.NoError(t, err)
	_, err = s.recipes.CreateRecipe(ctx, bob.ID, service.CreateRecipeInput{Title: "Bob's"})
	require.NoError(t, err)

	recipes, err := s.recipes.ListRecipes(ctx, alice.ID, "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Alice's", recipes[0].Title)
}

func TestListRecipesQueryFilter(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	_, err := s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{Title: "Miso Ramen", Cuisine: "Japanese"})
	require.NoError(t, err)
	_, err = s.recipes.CreateRecipe(ctx, user.ID, service.CreateRecipeInput{Title: "Carbonara", Cuisine: "Italian"})
	require.NoError(t, err)

	recipes, err := s.recipes.ListRecipes(ctx, user.ID, "japanese")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Miso Ramen", recipes[0].Title)
}
