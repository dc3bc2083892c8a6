package entities

import "errors"

// Error kinds surfaced at the action boundary. Every action catches these and
// reports a user-visible message; none of them crash the process and none are
// retried automatically.
var (
	// ErrCorruptCatalog means the persisted catalog is unparseable. Fatal for
	// the session: a corrupt catalog must never be replaced by an empty save.
	ErrCorruptCatalog = errors.New("catalog is corrupt")

	// ErrMalformedGeneration means a structured generation response did not
	// match the expected shape. The in-progress action aborts with no partial
	// write.
	ErrMalformedGeneration = errors.New("malformed generation response")

	// ErrImageFetch means portrait generation or download failed. Non-fatal:
	// the hero is persisted without an image path and the user is warned.
	ErrImageFetch = errors.New("image fetch failed")

	// ErrGenerationRequest means the generation service itself failed
	// (network or service error). The action aborts; retry is manual.
	ErrGenerationRequest = errors.New("generation request failed")

	// ErrMissingCredential means no API credential is configured. Blocks all
	// generation actions until one is supplied.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrHeroNotFound means the requested hero id is not in the catalog.
	ErrHeroNotFound = errors.New("hero not found")
)
