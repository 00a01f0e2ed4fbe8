package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

func TestCreateAndListMealPlans(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	plan, err := s.plans.CreateMealPlan(ctx, user.ID, service.CreateMealPlanInput{
		Name:      "Week 1",
		StartDate: &start,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, plan.ID)

	// all fields optional: an empty plan is valid
	_, err = s.plans.CreateMealPlan(ctx, user.ID, service.CreateMealPlanInput{})
	require.NoError(t, err)

	plans, err := s.plans.ListMealPlans(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestUpdateMealPlanRequiresAtLeastOneField(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	plan, err := s.plans.CreateMealPlan(ctx, user.ID, service.CreateMealPlanInput{Name: "Week 1"})
	require.NoError(t, err)

	_, err = s.plans.UpdateMealPlan(ctx, user.ID, service.UpdateMealPlanInput{ID: plan.ID})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateMealPlanMergesProvidedFields(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	plan, err := s.plans.CreateMealPlan(ctx, user.ID, service.CreateMealPlanInput{
		Name:      "Week 1",
		StartDate: &start,
	})
	require.NoError(t, err)

	updated, err := s.plans.UpdateMealPlan(ctx, user.ID, service.UpdateMealPlanInput{
		ID:   plan.ID,
		Name: strPtr("Week One"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Week One", updated.Name)
	require.NotNil(t, updated.StartDate)
	assert.True(t, updated.StartDate.Equal(start))
}

func TestMealPlanOwnershipMaskedAsNotFound(t *testing.T) {
	s := newTestServices(t)
	owner := testhelpers.CreateTestUser(t, s.db)
	intruder := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	plan, err := s.plans.CreateMealPlan(ctx, owner.ID, service.CreateMealPlanInput{Name: "Secret"})
	require.NoError(t, err)

	_, err = s.plans.OwnedPlan(ctx, intruder.ID, plan.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = s.plans.UpdateMealPlan(ctx, intruder.ID, service.UpdateMealPlanInput{
		ID:   plan.ID,
		Name: strPtr("Stolen"),
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.ErrorIs(t, s.plans.DeleteMealPlan(ctx, intruder.ID, plan.ID), service.ErrNotFound)

	kept, err := s.plans.OwnedPlan(ctx, owner.ID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret", kept.Name)
}

func TestDeleteMealPlanTwiceNotFound(t *testing.T) {
	s := newTestServices(t)
	user := testhelpers.CreateTestUser(t, s.db)
	ctx := context.Background()

	plan, err := s.plans.CreateMealPlan(ctx, user.ID, service.CreateMealPlanInput{Name: "Short-lived"})
	require.NoError(t, err)

	require.NoError(t, s.plans.DeleteMealPlan(ctx, user.ID, plan.ID))
	assert.ErrorIs(t, s.plans.DeleteMealPlan(ctx, user.ID, plan.ID), service.ErrNotFound)
}
