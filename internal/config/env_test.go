package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	validGemini := "AIza" + strings.Repeat("x", 35)
	validOpenAI := "sk-" + strings.Repeat("y", 45)

	tests := []struct {
		name    string
		gemini  string
		openai  string
		wantErr bool
	}{
		{name: "both keys valid", gemini: validGemini, openai: validOpenAI},
		{name: "no keys at all is fine at load time"},
		{name: "gemini only", gemini: validGemini},
		{name: "gemini wrong prefix", gemini: "sk-" + strings.Repeat("x", 35), wantErr: true},
		{name: "gemini too short", gemini: "AIzaShort", wantErr: true},
		{name: "openai wrong prefix", openai: "AIza" + strings.Repeat("y", 45), wantErr: true},
		{name: "openai too short", openai: "sk-short", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("OPENAI_API_KEY", tt.openai)

			keys, err := GetAPIKeys()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.gemini, keys.Gemini)
			assert.Equal(t, tt.openai, keys.OpenAI)
		})
	}
}

func TestGetAPIKeysTrimsWhitespace(t *testing.T) {
	key := "AIza" + strings.Repeat("x", 35)
	t.Setenv("GEMINI_API_KEY", "  "+key+"\n")
	t.Setenv("OPENAI_API_KEY", "")

	keys, err := GetAPIKeys()
	require.NoError(t, err)
	assert.Equal(t, key, keys.Gemini)
}

func TestKeyFor(t *testing.T) {
	keys := &APIKeys{Gemini: "AIza" + strings.Repeat("x", 35)}

	t.Run("configured provider returns its key", func(t *testing.T) {
		got, err := keys.KeyFor("gemini")
		require.NoError(t, err)
		assert.Equal(t, keys.Gemini, got)
	})

	t.Run("unconfigured provider reports missing credential", func(t *testing.T) {
		_, err := keys.KeyFor("openai")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingCredential))
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("unknown provider is an error", func(t *testing.T) {
		_, err := keys.KeyFor("acme")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrMissingCredential))
	})
}
