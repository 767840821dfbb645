package headed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/sirupsen/logrus"

	"vacature-scout/internal/config"
	"vacature-scout/pkg/utils"
)

// Session is one short-lived browser session used to obtain JavaScript
// rendered markup. A session is opened per pipeline invocation, never pooled
// or reused across detail pages, and must be closed on every exit path.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	config   *config.Config
	logger   *logrus.Logger
}

// NewSession launches a headless browser and prepares a stealth page
func NewSession(cfg *config.Config) (*Session, error) {
	logger := utils.GetLogger()

	l := launcher.New().
		Headless(cfg.Scraper.Headless).
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	// Use system-installed Chrome/Chromium instead of downloading
	if chromePath := systemChromePath(); chromePath != "" {
		l = l.Bin(chromePath)
		logger.WithField("chrome_path", chromePath).Debug("Using system Chrome browser")
	} else {
		logger.Warn("System Chrome not found, Rod will download a browser")
	}

	if cfg.Scraper.UserAgent != "" {
		l = l.Set("user-agent", cfg.Scraper.UserAgent)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	session := &Session{
		browser:  browser,
		launcher: l,
		config:   cfg,
		logger:   logger,
	}

	page, err := session.newPage()
	if err != nil {
		session.Close()
		return nil, err
	}
	session.page = page

	return session, nil
}

// newPage creates the page, with stealth patches when configured
func (s *Session) newPage() (*rod.Page, error) {
	var page *rod.Page
	var err error

	if s.config.Scraper.Stealth {
		page, err = stealth.Page(s.browser)
	} else {
		page, err = s.browser.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to set viewport")
	}

	if s.config.Scraper.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: s.config.Scraper.UserAgent,
		}); err != nil {
			s.logger.WithError(err).Warn("Failed to set user agent")
		}
	}

	return page, nil
}

// Render navigates to the URL, waits for the page to load plus the
// configured settle time for client-side rendering, and returns the full
// markup
func (s *Session) Render(ctx context.Context, url string) (string, error) {
	navCtx, cancel := context.WithTimeout(ctx, s.config.Scraper.RequestTimeout)
	defer cancel()

	err := rod.Try(func() {
		s.page.Context(navCtx).MustNavigate(url).MustWaitLoad()
	})
	if err != nil {
		return "", utils.NewFetchError(fmt.Sprintf("failed to navigate to %s: %v", url, err))
	}

	select {
	case <-time.After(s.config.Scraper.SettleTime):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	html, err := s.page.HTML()
	if err != nil {
		return "", utils.NewFetchError(fmt.Sprintf("failed to get page HTML for %s: %v", url, err))
	}

	s.logger.WithFields(logrus.Fields{
		"url":         url,
		"html_length": len(html),
	}).Debug("Page rendered")

	return html, nil
}

// Close tears down the page, the browser and the launcher. Safe to call on
// a partially initialized session.
func (s *Session) Close() {
	if s.page != nil {
		_ = rod.Try(func() { s.page.MustClose() })
	}
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
	s.logger.Debug("Browser session closed")
}

// systemChromePath returns the first installed Chrome/Chromium binary found
func systemChromePath() string {
	candidates := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
