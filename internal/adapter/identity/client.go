package identity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
)

// HTTPClient verifies bearer tokens against an external identity provider
// by calling its user-info endpoint with the token. A 2xx answer means the
// token is good; 401/403 means it is not; anything else is a provider fault.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP identity client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse identity url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("identity url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Verify asks the provider whether the token identifies a user.
func (c *HTTPClient) Verify(ctx context.Context, token string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/auth/v1/user")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domainErrors.ErrInvalidToken
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("identity request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("identity provider error: %s", resp.Status)
	}
}

func (c *HTTPClient) Name() string {
	return "identity-remote"
}
