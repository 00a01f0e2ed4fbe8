package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/service"
)

type MealPlanHandler struct {
	planService  *service.MealPlanService
	entryService *service.MealPlanEntryService
}

func NewMealPlanHandler(planService *service.MealPlanService, entryService *service.MealPlanEntryService) *MealPlanHandler {
	return &MealPlanHandler{
		planService:  planService,
		entryService: entryService,
	}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.ListMealPlans)
		plans.POST("", h.CreateMealPlan)
		plans.PUT("/:id", h.UpdateMealPlan)
		plans.DELETE("/:id", h.DeleteMealPlan)
		plans.GET("/:id/entries", h.ListEntries)
		plans.POST("/:id/entries", h.UpsertEntry)
	}
	router.DELETE("/meal-plan-entries/:id", h.DeleteEntry)
}

type createMealPlanRequest struct {
	Name      string  `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type updateMealPlanRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type upsertEntryRequest struct {
	ID          *uuid.UUID `json:"id"`
	Date        string     `json:"date"`
	MealSlot    string     `json:"meal_slot"`
	RecipeID    *uuid.UUID `json:"recipe_id"`
	CustomTitle string     `json:"custom_title"`
	Notes       string     `json:"notes"`
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListMealPlans(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"items": plans, "total": len(plans)})
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be YYYY-MM-DD")
		return
	}

	plan, err := h.planService.CreateMealPlan(c.Request.Context(), userID, service.CreateMealPlanInput{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"meal_plan": plan})
}

func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid meal plan id")
		return
	}

	var req updateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be YYYY-MM-DD")
		return
	}

	plan, err := h.planService.UpdateMealPlan(c.Request.Context(), userID, service.UpdateMealPlanInput{
		ID:        id,
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"meal_plan": plan})
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid meal plan id")
		return
	}

	if err := h.planService.DeleteMealPlan(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"id": id})
}

func (h *MealPlanHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid meal plan id")
		return
	}

	entries, err := h.entryService.ListMealPlanEntries(c.Request.Context(), userID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"items": entries, "total": len(entries)})
}

// UpsertEntry creates a new entry when the body has no id, and fully
// replaces the entry's fields when it does.
func (h *MealPlanHandler) UpsertEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid meal plan id")
		return
	}

	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if req.Date == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date is required")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}

	entry, err := h.entryService.UpsertMealPlanEntry(c.Request.Context(), userID, service.UpsertMealPlanEntryInput{
		ID:          req.ID,
		MealPlanID:  planID,
		Date:        date,
		MealSlot:    req.MealSlot,
		RecipeID:    req.RecipeID,
		CustomTitle: req.CustomTitle,
		Notes:       req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}
	respondData(c, status, gin.H{"meal_plan_entry": entry})
}

func (h *MealPlanHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid entry id")
		return
	}

	if err := h.entryService.DeleteMealPlanEntry(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"id": id})
}
