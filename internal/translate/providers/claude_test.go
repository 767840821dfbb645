package providers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacature-scout/internal/config"
	"vacature-scout/pkg/utils"
)

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Dutch", LanguageName("nl"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "German", LanguageName("de"))
	// unrecognized codes pass through raw
	assert.Equal(t, "fy", LanguageName("fy"))
}

func TestBuildTranslationPrompt(t *testing.T) {
	cfg := &config.Config{}
	provider := NewClaudeProvider(cfg)

	prompt := provider.buildTranslationPrompt("Goedemorgen", "nl", "en")

	assert.Contains(t, prompt, "Translate the following Dutch text to English.")
	assert.Contains(t, prompt, "Provide only the translation")
	assert.Contains(t, prompt, "Goedemorgen")
}

func TestParseResponseTextEmptyResponse(t *testing.T) {
	_, err := parseResponseText(&anthropic.Message{})

	require.Error(t, err)
	assert.True(t, utils.IsTranslationError(err), "a response without content is a translation failure")
}

func TestParseResponseTextBlankTextBlock(t *testing.T) {
	response := &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{{Type: "text", Text: "   "}},
	}

	_, err := parseResponseText(response)

	require.Error(t, err)
	assert.True(t, utils.IsTranslationError(err))
}

func TestParseResponseTextTrimsTranslation(t *testing.T) {
	// Build the block via JSON so the SDK populates the union's raw
	// payload, which AsText() decodes from.
	var block anthropic.ContentBlockUnion
	require.NoError(t, json.Unmarshal([]byte(`{"type":"text","text":"\nbaker\n"}`), &block))
	response := &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{block},
	}

	text, err := parseResponseText(response)

	require.NoError(t, err)
	assert.Equal(t, "baker", text)
}

func TestIsHealthyWithoutAPIKey(t *testing.T) {
	cfg := &config.Config{}
	provider := NewClaudeProvider(cfg)

	err := provider.IsHealthy(context.Background())
	assert.Error(t, err)
}
