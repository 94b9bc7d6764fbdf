package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fardannozami/health-coach/internal/domain"
)

func (c *Client) ListWorkoutPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	var plans []domain.WorkoutPlan
	if err := c.doJSON(ctx, http.MethodGet, "/workout-plans/"+url.PathEscape(userID), nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) GenerateWorkoutPlan(ctx context.Context, userID, apiKey string) (*domain.GeneratedPlan, error) {
	fields := map[string]string{
		"user_id":    userID,
		"hf_api_key": apiKey,
	}

	var plan domain.GeneratedPlan
	if err := c.doMultipart(ctx, "/workout-plans/generate", fields, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) SearchExercises(ctx context.Context, query string, limit int) ([]domain.Exercise, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/exercises/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result struct {
		Exercises []domain.Exercise `json:"exercises"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Exercises, nil
}
