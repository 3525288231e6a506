package module

import (
	"time"

	"skythread/internal/platform/config"
)

// Options controls caching and the AppView client settings
type Options struct {
	CacheTTL time.Duration
	MaxDepth int

	// AppView client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads THREADS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	tc := cfg.Prefix("THREADS_")
	return Options{
		CacheTTL:   tc.MayDuration("CACHE_TTL", 5*time.Minute),
		MaxDepth:   tc.MayInt("MAX_DEPTH", 80),
		BaseURL:    tc.MayString("APPVIEW_BASE_URL", ""),
		UserAgent:  tc.MayString("APPVIEW_UA", "skythread"),
		Timeout:    tc.MayDuration("APPVIEW_TIMEOUT", 10*time.Second),
		MaxRetries: tc.MayInt("APPVIEW_MAX_RETRIES", 4),
		RetryBase:  tc.MayDuration("APPVIEW_RETRY_BASE", 500*time.Millisecond),
	}
}
