package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fardannozami/health-coach/internal/domain"
)

func (c *Client) CreateDailyLog(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error) {
	var created domain.DailyLog
	if err := c.doJSON(ctx, http.MethodPost, "/daily-logs", log, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListDailyLogs returns the most recent logs first. limit <= 0 leaves the
// backend default in place.
func (c *Client) ListDailyLogs(ctx context.Context, userID string, limit int) ([]domain.DailyLog, error) {
	path := "/daily-logs/" + url.PathEscape(userID)
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var logs []domain.DailyLog
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
