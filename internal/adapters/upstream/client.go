// Package upstream provides the data-source adapters behind the
// application's Source port: an HTTP JSON client for the live endpoint and
// a static-file source for bundled datasets.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/domain/shared"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// Client fetches planet documents from the live JSON endpoint. Requests are
// rate limited and retried with exponential backoff plus jitter; a hard
// timeout keeps a dead upstream from leaving callers waiting forever.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
	clock       shared.Clock
}

// ClientConfig carries the tunables for NewClient
type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	RateLimit   float64
	Burst       int
	MaxRetries  int
	BackoffBase time.Duration

	// Clock is optional; nil means the real clock
	Clock shared.Clock
}

// NewClient creates a live-endpoint client
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 2
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	if cfg.Clock == nil {
		cfg.Clock = shared.NewRealClock()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		baseURL:     cfg.BaseURL,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		clock:       cfg.Clock,
	}
}

// FetchPlanet retrieves the raw dataset document for a planet via
// ?view=planet&planet=<id>
func (c *Client) FetchPlanet(ctx context.Context, planetID string) ([]byte, error) {
	u := c.baseURL + "?view=planet&planet=" + url.QueryEscape(planetID)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch planet %s: %w", planetID, err)
	}
	return body, nil
}

// Health probes the bare endpoint for its top-level health fields
func (c *Client) Health(ctx context.Context) (*atlas.HealthInfo, error) {
	body, err := c.get(ctx, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("health probe: %w", err)
	}
	var info atlas.HealthInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, world.NewParseError(fmt.Sprintf("health payload: %v", err))
	}
	return &info, nil
}

// addJitter spreads a backoff delay between 50% and 150% of its base value
func addJitter(d time.Duration) time.Duration {
	return time.Duration(float64(d) * (0.5 + rand.Float64()))
}

// get performs a GET with rate limiting and exponential backoff retries.
// Transport failures, 429 and 5xx are retried; other non-success statuses
// fail immediately. Every terminal failure surfaces as a world.FetchError.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	var lastErr *world.FetchError

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, world.NewFetchError(fmt.Sprintf("rate limiter: %v", err), 0)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, world.NewFetchError(fmt.Sprintf("build request: %v", err), 0)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = world.NewFetchError(fmt.Sprintf("network error: %v", err), 0)
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return nil, world.NewFetchError(fmt.Sprintf("cancelled: %v", ctx.Err()), 0)
			}
			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, world.NewFetchError(fmt.Sprintf("read response: %v", readErr), resp.StatusCode)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = world.NewFetchError(fmt.Sprintf("upstream status %d", resp.StatusCode), resp.StatusCode)
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return nil, world.NewFetchError(fmt.Sprintf("cancelled: %v", ctx.Err()), 0)
			}
			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, world.NewFetchError(
				fmt.Sprintf("upstream status %d: %s", resp.StatusCode, truncate(string(body), 200)),
				resp.StatusCode,
			)
		}

		return body, nil
	}

	if lastErr != nil {
		return nil, world.NewFetchError("max retries exceeded: "+lastErr.Message, lastErr.Status)
	}
	return nil, world.NewFetchError("max retries exceeded", 0)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
