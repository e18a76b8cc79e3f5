package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/types"
)

// maxExternalBody caps how much of an upstream response is read.
const maxExternalBody = 4 << 20

// ExternalRecipeService fetches recipes from a third-party API and maps them
// onto the local recipe shape. Results are never stored.
type ExternalRecipeService struct {
	client *http.Client
	url    string
}

func NewExternalRecipeService(url string, timeout time.Duration) *ExternalRecipeService {
	return &ExternalRecipeService{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// NewExternalRecipeServiceWithClient is used when the caller owns the client,
// e.g. tests pointing at an httptest server.
func NewExternalRecipeServiceWithClient(url string, client *http.Client) *ExternalRecipeService {
	return &ExternalRecipeService{client: client, url: url}
}

// FetchRecipes issues a single GET. Any transport, status or decoding failure
// is wrapped in ErrUpstream.
func (s *ExternalRecipeService) FetchRecipes(ctx context.Context) ([]models.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxExternalBody))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrUpstream, err)
	}

	external, err := decodeExternalRecipes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	recipes := make([]models.Recipe, 0, len(external))
	for _, r := range external {
		recipes = append(recipes, toRecipe(r))
	}
	return recipes, nil
}

// decodeExternalRecipes accepts either a bare array or {"recipes": [...]}.
func decodeExternalRecipes(body []byte) ([]types.ExternalRecipe, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var list []types.ExternalRecipe
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode recipe list: %w", err)
		}
		return list, nil
	case '{':
		var envelope types.ExternalRecipeEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode recipe envelope: %w", err)
		}
		if envelope.Recipes == nil {
			return nil, fmt.Errorf("response object has no recipes list")
		}
		return *envelope.Recipes, nil
	default:
		return nil, fmt.Errorf("unexpected response body")
	}
}

func toRecipe(r types.ExternalRecipe) models.Recipe {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Recipe{
		Title:        r.Name,
		Description:  r.Summary,
		Tags:         models.StringList(tags),
		Instructions: r.Instructions,
	}
}
