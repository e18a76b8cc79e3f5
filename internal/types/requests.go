package types

// Pointer fields distinguish "absent" from a zero value.

type MoodRequest struct {
	MoodName string `json:"moodName" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// UserSummary is the public view of a freshly registered user.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type FavoriteRequest struct {
	RecipeID *int64 `json:"recipeId" binding:"required"`
}

type CreateFeedbackRequest struct {
	RecipeID *int64  `json:"recipeId" binding:"required"`
	Rating   *int    `json:"rating" binding:"required,min=1,max=5"`
	Comments *string `json:"comments"`
}
