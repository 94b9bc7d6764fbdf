package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fardannozami/health-coach/internal/domain"
)

func (c *Client) CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", u, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
