package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/moodbites/backend/internal/models"
)

func TestFavorites(t *testing.T) {
	env := setupTestRouter(t)
	alice, token := env.createUser(t, "alice")
	recipe := env.createRecipe(t, "Soup")
	path := fmt.Sprintf("/api/users/%d/favorites", alice.ID)
	body := fmt.Sprintf(`{"recipeId":%d}`, recipe.ID)

	w := env.do(http.MethodGet, path, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorites":[]}`, w.Body.String())

	for i := 0; i < 2; i++ {
		w = env.do(http.MethodPost, path, body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.JSONEq(t, `{"message":"Recipe added to favorites"}`, w.Body.String())
	}

	var count int64
	require.NoError(t, env.db.Model(&models.Favorite{}).Where("user_id = ?", alice.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = env.do(http.MethodGet, path, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Favorites []models.Recipe `json:"favorites"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, recipe.ID, resp.Favorites[0].ID)
	assert.Equal(t, "Soup", resp.Favorites[0].Title)

	w = env.do(http.MethodDelete, fmt.Sprintf("%s/%d", path, recipe.ID), "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Recipe removed from favorites"}`, w.Body.String())

	w = env.do(http.MethodGet, path, "", token)
	assert.JSONEq(t, `{"favorites":[]}`, w.Body.String())
}

func TestFavoritesOwnership(t *testing.T) {
	env := setupTestRouter(t)
	alice, _ := env.createUser(t, "alice")
	_, bobToken := env.createUser(t, "bob")
	recipe := env.createRecipe(t, "Soup")
	path := fmt.Sprintf("/api/users/%d/favorites", alice.ID)

	w := env.do(http.MethodGet, path, "", bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, path, fmt.Sprintf(`{"recipeId":%d}`, recipe.ID), bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, fmt.Sprintf("%s/%d", path, recipe.ID), "", bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Zero(t, count)

	w = env.do(http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavoritesBadRequest(t *testing.T) {
	env := setupTestRouter(t)
	alice, token := env.createUser(t, "alice")
	path := fmt.Sprintf("/api/users/%d/favorites", alice.ID)

	w := env.do(http.MethodGet, "/api/users/abc/favorites", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, path, `{}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"recipeId is required"}`, w.Body.String())

	w = env.do(http.MethodPost, path, `{"recipeId":"soup"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodDelete, path+"/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
