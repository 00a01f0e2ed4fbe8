package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/service"
)

const maxPhotoBytes = 5 << 20

type RecipeHandler struct {
	recipeService *service.RecipeService
	imageService  *service.ImageService
}

func NewRecipeHandler(recipeService *service.RecipeService, imageService *service.ImageService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		imageService:  imageService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/photo", h.UploadPhoto)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"items": recipes, "total": len(recipes)})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var in service.CreateRecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var in service.UpdateRecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	in.ID = id

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"id": id})
}

// UploadPhoto stores a recipe photo in S3 and saves its URL on the
// recipe. Requires S3 to be configured.
func (h *RecipeHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if h.imageService == nil {
		respondError(c, http.StatusNotImplemented, "UNSUPPORTED", "photo storage is not configured")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	// Ownership check before touching storage.
	if _, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "photo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read photo")
		return
	}
	if len(data) > maxPhotoBytes {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "photo exceeds 5MB limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.imageService.UploadRecipePhoto(c.Request.Context(), id, data, contentType)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL", "failed to store photo")
		return
	}

	recipe, err := h.recipeService.SetPhotoURL(c.Request.Context(), userID, id, url)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"recipe": recipe})
}
