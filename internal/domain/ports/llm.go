// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/herodex/herodex/internal/domain/entities"
)

// Message roles used in generation requests.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged message in a generation request.
type Message struct {
	Role    string
	Content string
}

// GenerationClient defines the interface to the hosted generation service.
// All calls are synchronous and blocking; no timeouts or retries apply beyond
// what the caller's context provides.
type GenerationClient interface {
	// GenerateProfile sends a structured-generation request and parses the
	// response as a hero profile. Returns entities.ErrMalformedGeneration
	// when the response does not match the expected shape.
	GenerateProfile(ctx context.Context, messages []Message) (*entities.HeroProfile, error)

	// GenerateText sends a free-text request and returns the trimmed
	// response text.
	GenerateText(ctx context.Context, messages []Message) (string, error)

	// GenerateImage sends an image description and returns the URL of the
	// remotely hosted result.
	GenerateImage(ctx context.Context, description string) (string, error)
}

// ImageFetcher downloads remotely hosted image bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
