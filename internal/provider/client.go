package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/rsamoilov/buyerscope/internal/cache"
	"github.com/rsamoilov/buyerscope/internal/model"
	"github.com/rsamoilov/buyerscope/internal/util"
	"github.com/rsamoilov/buyerscope/internal/worker"
)

const maxResponseBytes = 10 * 1024 * 1024

// Client fetches rosters from the people-provider HTTP API with rate
// limiting, retries and optional response caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	limiter    *worker.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewClient creates a provider API client. A nil cache disables caching.
func NewClient(cfg model.ProviderConfig, c cache.Cache, cacheTTL time.Duration) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("provider base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
		},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		limiter:    worker.NewLimiter(rps, cfg.Burst),
		cache:      c,
		cacheTTL:   cacheTTL,
	}, nil
}

// rosterResponse is the provider's wire envelope. Unknown fields are ignored
// so provider-side additions never break ingestion.
type rosterResponse struct {
	People []model.PersonCandidate `json:"people"`
}

// FetchRoster retrieves the candidate roster for a company. Cached responses
// are served without touching the network.
func (c *Client) FetchRoster(ctx context.Context, companyID string) ([]model.PersonCandidate, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}

	key := cache.RosterKey(companyID)
	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			people, err := decodeRoster(data)
			if err == nil {
				return people, nil
			}
			// Corrupt cache entry: drop it and refetch.
			_ = c.cache.Delete(key)
		}
	}

	data, err := c.fetch(ctx, companyID)
	if err != nil {
		return nil, err
	}

	people, err := decodeRoster(data)
	if err != nil {
		return nil, fmt.Errorf("decode roster for %s: %w", companyID, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(key, data, c.cacheTTL)
	}

	return people, nil
}

func (c *Client) fetch(ctx context.Context, companyID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v1/companies/%s/people", c.baseURL, url.PathEscape(companyID))

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	var lastErr error
	attempts := c.maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return nil, err
			}
		}

		if err := c.limiter.Wait(ctx, parsed.Host); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		data, retryable, err := c.doRequest(ctx, endpoint)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("fetch roster for %s after %d attempts: %w", companyID, attempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, endpoint string) (data []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("provider returned status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}

	return body, false, nil
}

// decodeRoster accepts either the {"people": [...]} envelope or a bare array.
func decodeRoster(data []byte) ([]model.PersonCandidate, error) {
	var envelope rosterResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.People != nil {
		normalizeAll(envelope.People)
		return envelope.People, nil
	}

	var people []model.PersonCandidate
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("unmarshal roster: %w", err)
	}
	normalizeAll(people)
	return people, nil
}

func normalizeAll(people []model.PersonCandidate) {
	for i := range people {
		people[i].Normalize()
	}
}

func sleepBackoff(ctx context.Context, attempt int) error {
	delay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
