package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"vacature-scout/internal/config"
	"vacature-scout/pkg/utils"
)

// Fetcher issues plain HTTP GETs against the job board with the configured
// desktop user agent. Fetches are paced by a per-host token bucket.
type Fetcher struct {
	client  *http.Client
	config  *config.Config
	limiter *HostLimiter
	logger  *logrus.Logger
}

// NewFetcher creates a fetcher with the configured timeout and rate limit
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Scraper.RequestTimeout},
		config:  cfg,
		limiter: NewHostLimiter(cfg.Scraper.RateLimit),
		logger:  utils.GetLogger(),
	}
}

// FetchHTML fetches one page and returns its body. Transport failures and
// non-2xx responses surface as fetch errors.
func (f *Fetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx, url); err != nil {
		return "", utils.NewFetchError(fmt.Sprintf("rate limiter wait aborted for %s: %v", url, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", utils.NewFetchError(fmt.Sprintf("invalid request for %s: %v", url, err))
	}
	req.Header.Set("User-Agent", f.config.Scraper.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", utils.NewFetchError(fmt.Sprintf("request to %s failed: %v", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", utils.NewFetchError(fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, url))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", utils.NewFetchError(fmt.Sprintf("failed to read body of %s: %v", url, err))
	}

	f.logger.WithFields(logrus.Fields{
		"url":         url,
		"status":      resp.StatusCode,
		"body_length": len(body),
	}).Debug("Page fetched")

	return string(body), nil
}
