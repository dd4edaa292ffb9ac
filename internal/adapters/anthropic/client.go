package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/cc-quota/internal/domain"
	"github.com/bnema/cc-quota/internal/ports"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL    = "https://api.anthropic.com"
	DefaultBetaHeader = "oauth-2025-04-20"
	DefaultTimeout    = 5 * time.Second

	usagePath       = "/api/oauth/usage"
	betaHeaderName  = "anthropic-beta"
	maxResponseSize = 1 << 20
)

var ErrUnexpectedStatus = errors.New("unexpected usage response status")

// Client calls the OAuth usage endpoint once per Fetch. There is no retry.
type Client struct {
	baseURL    string
	betaHeader string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ ports.UsageClient = (*Client)(nil)

func NewClient(baseURL, betaHeader string, timeout time.Duration, httpClient *http.Client, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if betaHeader == "" {
		betaHeader = DefaultBetaHeader
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		betaHeader: betaHeader,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "usage-client").Logger(),
	}
}

func (c *Client) Fetch(ctx context.Context, accessToken string) (domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := c.fetchPayload(ctx, accessToken)
	if err != nil {
		c.logger.Debug().Err(err).Msg("usage request failed")
		return domain.Report{}, err
	}

	report := payload.toReport()
	c.logger.Debug().Msg("usage request succeeded")
	return report, nil
}

func (c *Client) fetchPayload(ctx context.Context, accessToken string) (usagePayload, error) {
	endpoint := c.baseURL + usagePath
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return usagePayload{}, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)
	request.Header.Set(betaHeaderName, c.betaHeader)
	request.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("requesting usage")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return usagePayload{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return usagePayload{}, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return usagePayload{}, fmt.Errorf("%w: status %d: %s", ErrUnexpectedStatus, response.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload usagePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return usagePayload{}, fmt.Errorf("decode payload: %w", err)
	}

	return payload, nil
}
