package newsapi

import (
	"time"

	"newsdesk/internal/resilience/retry"
	pkgconfig "newsdesk/pkg/config"
)

// Config holds the tunable parameters of the NewsAPI client.
// All values are loaded from environment variables with validated defaults.
type Config struct {
	// BaseURL of the NewsAPI v2 endpoint. Overridable for tests.
	BaseURL string

	// PageSize is the maximum number of articles requested per search.
	// NewsAPI caps a single request at 100.
	PageSize int

	// DaysBack bounds the search window: from now-DaysBack to now.
	// The free tier only serves articles up to one month old.
	DaysBack int

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// RequestsPerSecond and Burst configure the client-side rate limiter.
	RequestsPerSecond float64
	Burst             int

	// Retry configures the backoff behavior for transient failures.
	Retry retry.Config
}

// LoadConfig reads the client configuration from environment variables.
// Out-of-range values are clamped with a warning from the env helpers.
func LoadConfig() Config {
	pageSize := pkgconfig.GetEnvInt("NEWSAPI_PAGE_SIZE", 100)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 100
	}

	daysBack := pkgconfig.GetEnvInt("NEWSAPI_DAYS_BACK", 30)
	if daysBack < 1 || daysBack > 30 {
		daysBack = 30
	}

	return Config{
		BaseURL:           pkgconfig.GetEnvString("NEWSAPI_BASE_URL", "https://newsapi.org/v2"),
		PageSize:          pageSize,
		DaysBack:          daysBack,
		Timeout:           pkgconfig.GetEnvDuration("NEWSAPI_TIMEOUT", 15*time.Second),
		RequestsPerSecond: pkgconfig.GetEnvFloat("NEWSAPI_RPS", 1.0),
		Burst:             pkgconfig.GetEnvInt("NEWSAPI_BURST", 2),
		Retry:             retry.NewsAPIConfig(),
	}
}
