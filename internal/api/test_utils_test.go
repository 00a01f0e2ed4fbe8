package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.OpenTestDB(t)
	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	planService := service.NewMealPlanService(db)
	entryService := service.NewMealPlanEntryService(db, planService)

	authHandler := NewAuthHandler(authService)
	recipeHandler := NewRecipeHandler(recipeService, nil)
	mealPlanHandler := NewMealPlanHandler(planService, entryService)

	router := gin.New()
	router.Use(middleware.Recovery())

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	recipeHandler.RegisterRoutes(protected)
	mealPlanHandler.RegisterRoutes(protected)

	return &testEnv{router: router, db: db, auth: authService}
}

// registerTestUser registers a fresh user and returns a bearer token.
func (e *testEnv) registerTestUser(t *testing.T) string {
	t.Helper()
	token, err := e.auth.Register("Test User", fmt.Sprintf("testuser+%s@example.com", uuid.New()), "testpassword123")
	require.NoError(t, err)
	return token
}

func (e *testEnv) performRequest(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	envelope := decodeEnvelope(t, w)
	require.Equal(t, true, envelope["success"], "expected success envelope, got %s", w.Body.String())
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "missing data field in %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	envelope := decodeEnvelope(t, w)
	require.Equal(t, false, envelope["success"], "expected error envelope, got %s", w.Body.String())
	errObj, ok := envelope["error"].(map[string]interface{})
	require.True(t, ok, "missing error field in %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}
