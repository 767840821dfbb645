package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"

	"vacature-scout/internal/config"
	"vacature-scout/pkg/utils"
)

// ClaudeProvider implements the translation provider interface using
// Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger *logrus.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.Translator.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: utils.GetLogger(),
	}
}

// TranslateText translates text between the given language codes using a
// single translation-only completion request
func (cp *ClaudeProvider) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	startTime := time.Now()

	prompt := cp.buildTranslationPrompt(text, sourceLang, targetLang)

	reqCtx, cancel := context.WithTimeout(ctx, cp.config.Translator.Timeout)
	defer cancel()

	response, err := cp.client.Messages.New(reqCtx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.Translator.Model),
		MaxTokens:   int64(cp.config.Translator.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.Translator.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	translated, err := parseResponseText(response)
	if err != nil {
		return "", err
	}

	cp.logger.WithFields(logrus.Fields{
		"provider":        "claude",
		"source_lang":     sourceLang,
		"target_lang":     targetLang,
		"text_length":     len(text),
		"processing_time": time.Since(startTime),
	}).Debug("Translation completed")

	return translated, nil
}

// buildTranslationPrompt creates the translation-only instruction for Claude
func (cp *ClaudeProvider) buildTranslationPrompt(text, sourceLang, targetLang string) string {
	sourceName := LanguageName(sourceLang)
	targetName := LanguageName(targetLang)

	return fmt.Sprintf(`Translate the following %s text to %s.
Provide only the translation, no explanations or additional text.

Text to translate:
%s

Translation:`, sourceName, targetName, text)
}

// parseResponseText extracts the first text block from a Claude response
func parseResponseText(response *anthropic.Message) (string, error) {
	if len(response.Content) == 0 {
		return "", utils.NewTranslationError("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	responseText = strings.TrimSpace(responseText)
	if responseText == "" {
		return "", utils.NewTranslationError("no text content in Claude response")
	}

	return responseText, nil
}

// IsHealthy checks if the Claude provider is configured and reachable
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.Translator.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set TRANSLATOR_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.Translator.Model),
		MaxTokens: 10,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
