package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/api"
	"github.com/pageza/moodbites/backend/internal/mocks"
	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/router"
	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/testhelpers"
)

const testSecret = "test-secret"

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	auth     *service.AuthService
	external *mocks.MockExternalRecipeService
}

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter wires real services over an in-memory database. Only the
// third-party recipe API is mocked.
func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()

	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, testSecret, time.Hour)
	external := new(mocks.MockExternalRecipeService)

	handlers := api.NewHandlers(api.Services{
		Auth:     auth,
		Profile:  service.NewProfileService(db),
		Recipes:  service.NewRecipeService(db),
		Feedback: service.NewFeedbackService(db),
		External: external,
	}, db)

	return &testEnv{
		router:   router.SetupRouter(handlers, auth),
		db:       db,
		auth:     auth,
		external: external,
	}
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
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

// createUser registers a user through the service and returns it with a token.
func (e *testEnv) createUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	ctx := context.Background()

	user, err := e.auth.Register(ctx, username, "password")
	require.NoError(t, err)
	token, err := e.auth.Login(ctx, username, "password")
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) createRecipe(t *testing.T, title string, moods ...string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Title:        title,
		Description:  title + " description",
		Tags:         models.StringList{"dinner"},
		Instructions: "Cook it.",
	}
	require.NoError(t, e.db.Create(recipe).Error)

	for _, name := range moods {
		mood := models.Mood{Name: name}
		require.NoError(t, e.db.Where(models.Mood{Name: name}).FirstOrCreate(&mood).Error)
		require.NoError(t, e.db.Create(&models.RecipeMood{RecipeID: recipe.ID, MoodID: mood.ID}).Error)
	}
	return recipe
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
