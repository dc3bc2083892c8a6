// Package openai provides a GenerationClient implementation using OpenAI.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/ports"
	"github.com/herodex/herodex/internal/infrastructure/config"
)

// Client implements the GenerationClient interface using OpenAI.
type Client struct {
	client     *openai.Client
	model      string
	imageModel string
	apiKey     string
}

// NewClient creates a new OpenAI generation client. An absent API key is not
// an error here: it must surface per action as entities.ErrMissingCredential
// rather than preventing the application from starting.
func NewClient(cfg config.LLMConfig) *Client {
	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	imageModel := openai.CreateImageModelDallE3
	if cfg.ImageModel != "" {
		imageModel = cfg.ImageModel
	}

	return &Client{
		client:     openai.NewClient(cfg.APIKey),
		model:      model,
		imageModel: imageModel,
		apiKey:     cfg.APIKey,
	}
}

// GenerateProfile sends a structured-generation request and parses the
// response as a hero profile.
func (c *Client) GenerateProfile(ctx context.Context, messages []ports.Message) (*entities.HeroProfile, error) {
	content, err := c.complete(ctx, messages)
	if err != nil {
		return nil, err
	}
	return parseProfile(content)
}

// GenerateText sends a free-text request and returns the trimmed response.
func (c *Client) GenerateText(ctx context.Context, messages []ports.Message) (string, error) {
	content, err := c.complete(ctx, messages)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// GenerateImage requests a portrait and returns the hosted image URL.
func (c *Client) GenerateImage(ctx context.Context, description string) (string, error) {
	if err := c.checkCredential(); err != nil {
		return "", err
	}

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         description,
		Model:          c.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("%w: calling OpenAI images: %v", entities.ErrGenerationRequest, err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: no image returned", entities.ErrGenerationRequest)
	}

	return resp.Data[0].URL, nil
}

// complete runs a chat completion and returns the raw response content.
func (c *Client) complete(ctx context.Context, messages []ports.Message) (string, error) {
	if err := c.checkCredential(); err != nil {
		return "", err
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: chatMessages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: calling OpenAI: %v", entities.ErrGenerationRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from OpenAI", entities.ErrGenerationRequest)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *Client) checkCredential() error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: set OPENAI_API_KEY or llm.api_key in config", entities.ErrMissingCredential)
	}
	return nil
}

// parseProfile validates a structured response against the fixed profile
// field set. Any missing field rejects the whole response.
func parseProfile(content string) (*entities.HeroProfile, error) {
	content = cleanJSONResponse(content)

	var profile entities.HeroProfile
	if err := json.Unmarshal([]byte(content), &profile); err != nil {
		return nil, fmt.Errorf("%w: parsing profile JSON: %v (response: %s)", entities.ErrMalformedGeneration, err, content)
	}

	if missing := profile.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: profile missing fields: %s", entities.ErrMalformedGeneration, strings.Join(missing, ", "))
	}

	return &profile, nil
}

// cleanJSONResponse removes markdown code blocks if present.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
