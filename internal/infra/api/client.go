package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/domain"
)

// ClientOptions contains options for creating a client
type ClientOptions struct {
	// HTTPClient is an optional custom HTTP client. The default one has no
	// timeout: requests run until the backend answers or ctx is done.
	HTTPClient *http.Client
	Logger     walog.Logger
}

// Client talks to the health coach backend under {baseURL}/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        walog.Logger
}

var _ domain.HealthAPI = (*Client)(nil)

func NewClient(baseURL string, opts ...ClientOptions) *Client {
	var opt ClientOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	httpClient := opt.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := opt.Logger
	if logger == nil {
		logger = walog.Noop
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger,
	}
}

type filePart struct {
	field       string
	name        string
	contentType string
	data        []byte
}

// doJSON sends body as JSON (when non-nil) and decodes the response into result.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	contentType := ""
	if body != nil {
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, bodyReader, result)
}

// doMultipart posts fields and an optional file as multipart/form-data.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, file *filePart, result any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(file.data); err != nil {
			return fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), &buf, result)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, result any) error {
	url := c.baseURL + "/api" + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debugf("%s %s (request %s)", method, path, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ConnectionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.log.Debugf("%s %s failed with %d (request %s)", method, path, resp.StatusCode, requestID)
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// parseErrorResponse extracts the backend's "detail" message. Only a string
// detail is kept; validation errors carry a list there, which is not
// something to show a user.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Detail json.RawMessage `json:"detail"`
	}

	apiErr := &domain.APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(errResp.Detail, &detail); err == nil {
		apiErr.Detail = strings.TrimSpace(detail)
	}
	return apiErr
}
