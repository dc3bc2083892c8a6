// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/ports"
)

// GenerationClient is a mock implementation of ports.GenerationClient.
type GenerationClient struct {
	// GenerateProfile return values
	Profile    *entities.HeroProfile
	ProfileErr error

	// GenerateText returns Texts in order across calls.
	Texts   []string
	TextErr error
	// TextCalls records the messages of every GenerateText call.
	TextCalls [][]ports.Message

	// GenerateImage return values
	ImageURL string
	ImageErr error
	// ImageCalls records every image description requested.
	ImageCalls []string

	textCalls int
}

// GenerateProfile returns the configured profile or error.
func (m *GenerationClient) GenerateProfile(_ context.Context, _ []ports.Message) (*entities.HeroProfile, error) {
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return m.Profile, nil
}

// GenerateText returns the next configured text or error.
func (m *GenerationClient) GenerateText(_ context.Context, messages []ports.Message) (string, error) {
	m.TextCalls = append(m.TextCalls, messages)
	if m.TextErr != nil {
		return "", m.TextErr
	}
	if m.textCalls >= len(m.Texts) {
		return "", nil
	}
	text := m.Texts[m.textCalls]
	m.textCalls++
	return text, nil
}

// GenerateImage returns the configured URL or error.
func (m *GenerationClient) GenerateImage(_ context.Context, description string) (string, error) {
	m.ImageCalls = append(m.ImageCalls, description)
	if m.ImageErr != nil {
		return "", m.ImageErr
	}
	return m.ImageURL, nil
}

// ImageFetcher is a mock implementation of ports.ImageFetcher.
type ImageFetcher struct {
	Data []byte
	Err  error
	// URLs records every fetched URL.
	URLs []string
}

// Fetch returns the configured bytes or error.
func (m *ImageFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.URLs = append(m.URLs, url)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data, nil
}
