package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/prompts"
	"github.com/herodex/herodex/internal/infrastructure/config"
)

const validProfileJSON = `{"name":"Bolt","superpowers":"speed","hometown":"Metro","backstory":"...","personality_traits":"...","appearance":"..."}`

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(config.LLMConfig{APIKey: "test-key"})
	assert.Equal(t, "gpt-4o-mini", client.model)
	assert.Equal(t, "dall-e-3", client.imageModel)

	client = NewClient(config.LLMConfig{APIKey: "test-key", Model: "gpt-4o", ImageModel: "dall-e-2"})
	assert.Equal(t, "gpt-4o", client.model)
	assert.Equal(t, "dall-e-2", client.imageModel)
}

func TestClient_MissingCredentialBlocksActions(t *testing.T) {
	client := NewClient(config.LLMConfig{})
	ctx := context.Background()

	_, err := client.GenerateProfile(ctx, prompts.ProfileMessages())
	assert.ErrorIs(t, err, entities.ErrMissingCredential)

	_, err = client.GenerateText(ctx, prompts.SummaryMessages("text"))
	assert.ErrorIs(t, err, entities.ErrMissingCredential)

	_, err = client.GenerateImage(ctx, "a portrait")
	assert.ErrorIs(t, err, entities.ErrMissingCredential)
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "plain JSON",
			content: validProfileJSON,
			wantErr: false,
		},
		{
			name:    "fenced JSON",
			content: "```json\n" + validProfileJSON + "\n```",
			wantErr: false,
		},
		{
			name:    "not JSON",
			content: "Sure! Here is your hero: Bolt, the fastest man alive.",
			wantErr: true,
		},
		{
			name:    "JSON array instead of object",
			content: "[" + validProfileJSON + "]",
			wantErr: true,
		},
		{
			name:    "missing field",
			content: `{"name":"Bolt","superpowers":"speed","hometown":"Metro","backstory":"...","personality_traits":"..."}`,
			wantErr: true,
		},
		{
			name:    "empty field",
			content: `{"name":"","superpowers":"speed","hometown":"Metro","backstory":"...","personality_traits":"...","appearance":"..."}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := parseProfile(tt.content)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrMalformedGeneration)
				assert.Nil(t, profile)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Bolt", profile.Name)
				assert.Equal(t, "speed", profile.Superpowers)
			}
		})
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON",
			input:    `{"name": "Bolt"}`,
			expected: `{"name": "Bolt"}`,
		},
		{
			name:     "JSON with json code block",
			input:    "```json\n{\"name\": \"Bolt\"}\n```",
			expected: `{"name": "Bolt"}`,
		},
		{
			name:     "JSON with plain code block",
			input:    "```\n{\"name\": \"Bolt\"}\n```",
			expected: `{"name": "Bolt"}`,
		},
		{
			name:     "JSON with whitespace",
			input:    "  \n{\"name\": \"Bolt\"}\n  ",
			expected: `{"name": "Bolt"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONResponse(tt.input))
		})
	}
}
