package translate

import (
	"fmt"

	"vacature-scout/internal/config"
	"vacature-scout/internal/translate/providers"
)

// NewTranslator creates the configured translation adapter. The adapter is
// meant to be constructor-injected into whatever needs translation; there is
// no shared global instance.
func NewTranslator(cfg *config.Config) (Translator, error) {
	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}

	return NewAdapter(provider, cfg.Translator.RateLimit), nil
}

// newProvider creates the remote backend for the configured provider name
func newProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Translator.Provider {
	case "claude":
		return providers.NewClaudeProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported translator provider: %s", cfg.Translator.Provider)
	}
}
