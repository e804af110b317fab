package sportsdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/team-report/internal/platform/logging"
	"github.com/riskibarqy/team-report/internal/platform/resilience"
	"github.com/riskibarqy/team-report/internal/usecase"
)

const (
	defaultBaseURL = "https://api.sportsdata.io/v3/nba"
	authHeader     = "Ocp-Apim-Subscription-Key"
	maxBodyBytes   = 8 << 20
)

var (
	ErrMalformedPayload = stderrors.New("malformed provider payload")

	errSportsDataTransient = crerr.New("sportsdata transient failure")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Credential     string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads rosters, schedules, season stats and the team directory
// from the SportsDataIO NBA API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	credential string
	maxRetries int
	logger     *logging.Logger
	validate   *validator.Validate
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		credential: strings.TrimSpace(cfg.Credential),
		maxRetries: maxInt(cfg.MaxRetries, 0),
		logger:     logger,
		validate:   validator.New(),
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	var raw []byte
	err := c.breaker.Do(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, c.baseURL+path)
		return reqErr
	}, isSportsDataCircuitFailure)
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "sportsdata circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: stats provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrMalformedPayload, path, err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(authHeader, c.credential)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSportsDataTransient, sanitizeSensitiveText(err.Error(), c.credential))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSportsDataTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSportsDataTransient, resp.StatusCode, abbreviateBody(raw, c.credential))
			default:
				lastErr = fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw, c.credential))
				if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
					lastErr = fmt.Errorf("%w: %v", usecase.ErrUnauthorized, lastErr)
				}
				c.logger.WarnContext(ctx, "sportsdata request rejected", "url", redactURL(fullURL), "status", resp.StatusCode)
				return nil, lastErr
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sportsdata request failed", "url", redactURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, credential string) string {
	value = strings.TrimSpace(value)
	if value == "" || credential == "" {
		return value
	}
	return strings.ReplaceAll(value, credential, "REDACTED")
}

func isSportsDataCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSportsDataTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""
	parsed.User = nil
	return parsed.String()
}

func abbreviateBody(body []byte, credential string) string {
	text := sanitizeSensitiveText(string(body), credential)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
