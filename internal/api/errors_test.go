package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/moodbites/backend/internal/api"
	"github.com/pageza/moodbites/backend/internal/mocks"
	"github.com/pageza/moodbites/backend/internal/router"
	"github.com/pageza/moodbites/backend/internal/testhelpers"
	"github.com/pageza/moodbites/backend/internal/types"
)

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	recipes := new(mocks.MockRecipeService)
	auth := new(mocks.MockAuthService)
	profiles := new(mocks.MockProfileService)
	feedback := new(mocks.MockFeedbackService)

	recipes.On("FindRecipesByMood", mock.Anything, "happy").
		Return(nil, errors.New(`pq: relation "recipe_moods" does not exist`))
	auth.On("ValidateToken", "tok").Return(&types.TokenClaims{UserID: 1, Username: "alice"}, nil)
	recipes.On("FavoriteRecipe", mock.Anything, int64(1), int64(2)).
		Return(errors.New("connection refused"))
	profiles.On("GetProfile", mock.Anything, int64(1)).
		Return(nil, errors.New(`pq: password authentication failed for user "moodbites"`))
	feedback.On("CreateFeedback", mock.Anything, int64(1), mock.Anything).
		Return(nil, errors.New("dial tcp 10.0.0.5:5432: i/o timeout"))

	env := &testEnv{
		router: router.SetupRouter(api.NewHandlers(api.Services{
			Auth:     auth,
			Profile:  profiles,
			Recipes:  recipes,
			Feedback: feedback,
		}, db), auth),
	}

	w := env.do(http.MethodPost, "/api/mood", `{"moodName":"happy"}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch recipes"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/users/1/favorites", `{"recipeId":2}`, "tok")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = env.do(http.MethodGet, "/api/users/profile", "", "tok")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to get profile"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/feedback", `{"recipeId":2,"rating":4}`, "tok")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to submit feedback"}`, w.Body.String())

	recipes.AssertExpectations(t)
	profiles.AssertExpectations(t)
	feedback.AssertExpectations(t)
}

func TestHealthAndRoot(t *testing.T) {
	env := setupTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	}

	w := env.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestCORSHeaders(t *testing.T) {
	env := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/moods", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
