package scraper

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter paces requests per target host with a token bucket, replacing
// fixed inter-request sleeps. The board is a single host in practice, but
// diagnostic runs may touch others.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	perMin   int
	mu       sync.Mutex
}

// NewHostLimiter creates a limiter allowing perMinute requests per host
func NewHostLimiter(perMinute int) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		perMin:   perMinute,
	}
}

// Wait blocks until a request to the URL's host is allowed or the context is
// canceled
func (hl *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	return hl.forHost(hostOf(rawURL)).Wait(ctx)
}

func (hl *HostLimiter) forHost(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if limiter, ok := hl.limiters[host]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(float64(hl.perMin)/60.0), 1)
	hl.limiters[host] = limiter
	return limiter
}

// hostOf extracts the lowercased hostname from a URL string
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(parsed.Hostname())
}
