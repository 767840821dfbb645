package translate

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"vacature-scout/pkg/utils"
)

// Adapter wraps a Provider with the best-effort translation policy: empty
// input short-circuits without a remote call, calls are paced by a token
// bucket, and any provider failure degrades to the original text instead of
// propagating an error.
type Adapter struct {
	provider Provider
	limiter  *rate.Limiter
	logger   *logrus.Logger
}

// NewAdapter creates a translation adapter around the given provider.
// callsPerMinute caps the remote call rate; zero disables pacing.
func NewAdapter(provider Provider, callsPerMinute int) *Adapter {
	var limiter *rate.Limiter
	if callsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60.0), 1)
	}

	return &Adapter{
		provider: provider,
		limiter:  limiter,
		logger:   utils.GetLogger(),
	}
}

// Translate translates text between the given language codes. The returned
// Result carries the original text with Translated=false whenever no genuine
// translation happened.
func (a *Adapter) Translate(ctx context.Context, text, sourceLang, targetLang string) Result {
	// Cost avoidance: never spend a remote call on whitespace
	if strings.TrimSpace(text) == "" {
		return Result{Text: text}
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			a.logger.WithError(err).Warn("Rate limiter wait aborted, keeping original text")
			return Result{Text: text}
		}
	}

	translated, err := a.provider.TranslateText(ctx, text, sourceLang, targetLang)
	if err != nil {
		a.logger.WithFields(logrus.Fields{
			"provider":    a.provider.GetProviderName(),
			"source_lang": sourceLang,
			"target_lang": targetLang,
			"text_length": len(text),
			"error":       err.Error(),
		}).Warn("Translation failed, keeping original text")
		return Result{Text: text}
	}

	return Result{Text: translated, Translated: true}
}
