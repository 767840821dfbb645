package translate

import "context"

// Result carries the outcome of one translation call. Translated is false
// when the text was returned unchanged, either because the input was empty
// or because the remote call failed and the adapter degraded to the
// original text.
type Result struct {
	Text       string
	Translated bool
}

// Translator is the single capability the rest of the pipeline depends on.
// Implementations never return an error; failure degrades to the original
// text with Translated=false.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) Result
}

// Provider is a remote text-generation backend the adapter delegates to
type Provider interface {
	// TranslateText translates text between the given language codes
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// IsHealthy checks if the provider is configured and reachable
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
