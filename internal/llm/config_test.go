package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModel(t *testing.T) {
	cfg := DefaultGeminiConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestGetModelFallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced), "missing tier falls back through standard to lite")

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestWithModel(t *testing.T) {
	base := DefaultGeminiConfig()
	custom := base.WithModel(TierStandard, "custom-model")

	assert.Equal(t, "custom-model", custom.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(TierAdvanced), "other tiers are preserved")
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierStandard), "base config is not mutated")
}

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain key", "AIzaSyExample", "AIzaSyExample"},
		{"Key with whitespace", "  AIzaSyExample \n", "AIzaSyExample"},
		{"Empty", "", ""},
		{"Service-account JSON resolves to unconfigured", `{"type": "service_account", "project_id": "p"}`, ""},
		{"Malformed JSON-ish key passes through", "{not-json", "{not-json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAPIKey(tt.input))
		})
	}
}
