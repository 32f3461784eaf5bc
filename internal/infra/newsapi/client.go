// Package newsapi implements the query client for the NewsAPI.org
// /v2/everything endpoint. It returns cleaned article values in upstream
// relevancy order; ranking is entirely delegated to the API.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/resilience/retry"
)

// Sentinel errors for the upstream API failure classes callers branch on.
var (
	// ErrInvalidAPIKey indicates a missing, invalid, or disabled credential.
	ErrInvalidAPIKey = errors.New("newsapi: invalid or missing API key")

	// ErrRateLimited indicates the upstream request quota is exhausted.
	ErrRateLimited = errors.New("newsapi: rate limit exceeded")
)

// APIError is a non-sentinel upstream error carrying the NewsAPI error
// code and message from the response envelope.
type APIError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi: %s: %s", e.Code, e.Message)
}

// envelope is the NewsAPI response wrapper. On success status is "ok";
// on failure status is "error" and code/message describe the problem.
type envelope struct {
	Status       string       `json:"status"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

// rawArticle mirrors the upstream article shape. Nullable upstream fields
// decode to empty strings.
type rawArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Client queries the NewsAPI /v2/everything endpoint with client-side rate
// limiting, retry with backoff, and a circuit breaker.
type Client struct {
	httpClient *http.Client
	apiKey     string
	cfg        Config
	limiter    *rate.Limiter
	breaker    *circuitbreaker.CircuitBreaker

	// now is injectable for deterministic date windows in tests.
	now func() time.Time
}

// NewClient creates a NewsAPI client with the given credential and
// configuration.
func NewClient(apiKey string, cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     apiKey,
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:    circuitbreaker.New(circuitbreaker.NewsAPIConfig()),
		now:        time.Now,
	}
}

// Search fetches articles matching the query in the given language, sorted
// by upstream relevancy. The returned slice preserves upstream order and
// normalizes missing fields to empty strings. Credential and quota
// problems map to ErrInvalidAPIKey and ErrRateLimited respectively.
func (c *Client) Search(ctx context.Context, query, language string) ([]entity.Article, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var articles []entity.Article

	retryErr := retry.WithBackoff(ctx, c.cfg.Retry, func() error {
		cbResult, err := c.breaker.Execute(func() (interface{}, error) {
			return c.doSearch(ctx, query, language)
		})
		if err != nil {
			return err
		}
		articles = cbResult.([]entity.Article)
		return nil
	})

	if retryErr != nil {
		var httpErr *retry.HTTPError
		if errors.As(retryErr, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %s", ErrRateLimited, httpErr.Message)
		}
		return nil, fmt.Errorf("newsapi search failed: %w", retryErr)
	}

	logging.FromContext(ctx).Debug("newsapi search completed",
		slog.String("query", query),
		slog.String("language", language),
		slog.Int("articles", len(articles)))

	return articles, nil
}

// doSearch performs a single HTTP request without retry or breaker logic.
func (c *Client) doSearch(ctx context.Context, query, language string) ([]entity.Article, error) {
	to := c.now()
	from := to.AddDate(0, 0, -c.cfg.DaysBack)

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", language)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", fmt.Sprint(c.cfg.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logging.FromContext(ctx).Warn("failed to close response body", slog.Any("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Retryable transport-level failures carry the status code so the
	// backoff layer can classify them.
	if resp.StatusCode >= 500 ||
		resp.StatusCode == http.StatusTooManyRequests ||
		resp.StatusCode == http.StatusRequestTimeout {
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if env.Status != "ok" {
		return nil, mapAPIError(env.Code, env.Message)
	}

	logging.FromContext(ctx).Debug("newsapi request succeeded",
		slog.Int("total_results", env.TotalResults),
		slog.Duration("duration", time.Since(start)))

	return clean(env.Articles), nil
}

// clean normalizes raw upstream articles into domain values, preserving
// order. Nothing is deduplicated or re-sorted.
func clean(raw []rawArticle) []entity.Article {
	articles := make([]entity.Article, 0, len(raw))
	for _, r := range raw {
		articles = append(articles, entity.Article{
			Title:       r.Title,
			URL:         r.URL,
			PublishedAt: r.PublishedAt,
			Source:      r.Source.Name,
			Author:      r.Author,
			Description: r.Description,
		})
	}
	return articles
}

// mapAPIError converts a NewsAPI error code into the sentinel taxonomy.
func mapAPIError(code, message string) error {
	switch code {
	case "apiKeyInvalid", "apiKeyMissing", "apiKeyDisabled", "apiKeyExhausted":
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, message)
	case "rateLimited":
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	default:
		return &APIError{Code: code, Message: message}
	}
}

// errorMessage extracts the upstream message from an error body, falling
// back to the raw body when it is not the usual envelope.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	const maxLen = 200
	if len(body) > maxLen {
		body = body[:maxLen]
	}
	return string(body)
}
