package types

// ExternalRecipe is one record as served by the third-party recipe API.
type ExternalRecipe struct {
	Name         string   `json:"name"`
	Summary      string   `json:"summary"`
	Tags         []string `json:"tags"`
	Instructions string   `json:"instructions"`
}

// ExternalRecipeEnvelope is the wrapped form some upstreams return. Recipes
// is nil when the key is absent or null.
type ExternalRecipeEnvelope struct {
	Recipes *[]ExternalRecipe `json:"recipes"`
}
