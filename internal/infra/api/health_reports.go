package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fardannozami/health-coach/internal/domain"
)

func (c *Client) ListHealthReports(ctx context.Context, userID string) ([]domain.HealthReport, error) {
	var reports []domain.HealthReport
	if err := c.doJSON(ctx, http.MethodGet, "/health-reports/"+url.PathEscape(userID), nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) UploadHealthReport(ctx context.Context, userID, fileName string, pdf []byte) (*domain.UploadResult, error) {
	fields := map[string]string{"user_id": userID}
	file := &filePart{
		field:       "file",
		name:        fileName,
		contentType: "application/pdf",
		data:        pdf,
	}

	var result domain.UploadResult
	if err := c.doMultipart(ctx, "/health-reports/upload", fields, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) AnalyzeHealthReport(ctx context.Context, reportID, apiKey string) (*domain.AnalysisResult, error) {
	req := map[string]string{
		"report_id":  reportID,
		"hf_api_key": apiKey,
	}

	var result domain.AnalysisResult
	if err := c.doJSON(ctx, http.MethodPost, "/health-reports/analyze", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
