package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anmicius0/idea-validator/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const maxLoggedBody = 1000

// HTTPClient is a base HTTP client using resty for JSON API requests.
type HTTPClient struct {
	client *resty.Client
	log    *zap.Logger
}

// HTTPError represents a non-2xx response from the remote API.
// Body is the raw response text, untruncated.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates a new HTTPClient with JSON headers and the given timeout.
// Authentication is per request; the client holds no credential.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &HTTPClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
		log: utils.WithComponent("http_client"),
	}
}

// Close releases the underlying transport.
func (c *HTTPClient) Close() error {
	return c.client.Close()
}

// DoReq performs a single HTTP request authenticated with a bearer token.
// Any status outside 200-299 is returned as *HTTPError.
func (c *HTTPClient) DoReq(ctx context.Context, method, endpoint, token string, body any) (*resty.Response, error) {
	request := c.client.R().
		SetContext(ctx).
		SetBody(body)
	if token != "" {
		request.SetAuthToken(token)
	}

	c.log.Debug("HTTP request start",
		zap.String("method", method),
		zap.String("endpoint", endpoint))

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	duration := time.Since(start)
	if err != nil {
		c.log.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Duration(utils.FieldDuration, duration),
			zap.Error(err))
		return nil, err
	}

	status := response.StatusCode()
	if status < 200 || status > 299 {
		rawBody := response.String()
		logged := strings.TrimSpace(rawBody)
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody] + "…"
		}
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("url", response.Request.URL),
			zap.Int(utils.FieldStatusCode, status),
			zap.String("body", logged),
			zap.Duration(utils.FieldDuration, duration),
		}
		switch {
		case status == 401 || status == 403:
			// bad or exhausted key
			c.log.Info("API rejected credential", fields...)
		case status >= 500:
			c.log.Error("API error response (server)", fields...)
		default:
			c.log.Warn("API error response (client)", fields...)
		}
		return nil, &HTTPError{StatusCode: status, Body: rawBody}
	}

	c.log.Debug("HTTP request completed",
		zap.String("method", method),
		zap.String("url", response.Request.URL),
		zap.Int(utils.FieldStatusCode, status),
		zap.Duration(utils.FieldDuration, duration))

	return response, nil
}
