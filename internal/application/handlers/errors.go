package handlers

import (
	"errors"
	"fmt"

	"github.com/herodex/herodex/internal/domain/entities"
)

// UserMessage converts an action error into the message shown to the user.
// Every error kind maps to a plain explanation; nothing is retried for them.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrMissingCredential):
		return "No API credential configured. Set OPENAI_API_KEY or llm.api_key in config, then try again."
	case errors.Is(err, entities.ErrCorruptCatalog):
		return "The hero catalog file is corrupt and cannot be read. Fix or remove it before continuing; it will not be overwritten."
	case errors.Is(err, entities.ErrMalformedGeneration):
		return "The generation service returned an unusable response. Nothing was saved; try again."
	case errors.Is(err, entities.ErrGenerationRequest):
		return "The generation service could not be reached. Nothing was saved; try again."
	case errors.Is(err, entities.ErrHeroNotFound):
		return "No hero with that id exists."
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
