package ports

import (
	"context"

	"github.com/herodex/herodex/internal/domain/entities"
)

// HeroStore defines the interface for catalog, narrative log, and portrait
// persistence. No locking or transactions: single-user single-process usage
// is assumed.
type HeroStore interface {
	// LoadCatalog returns the full ordered catalog, or an empty slice when no
	// catalog exists yet. Returns entities.ErrCorruptCatalog when the
	// persisted catalog is not valid structured data.
	LoadCatalog(ctx context.Context) ([]entities.Hero, error)

	// SaveCatalog overwrites the entire persisted catalog.
	SaveCatalog(ctx context.Context, heroes []entities.Hero) error

	// LoadLog returns the full narrative log text for a hero, or empty text
	// when no log exists.
	LoadLog(ctx context.Context, heroID string) (string, error)

	// AppendLog appends an entry plus a separating blank line to the hero's
	// narrative log, creating the log if absent. Entries are never rewritten
	// or reordered.
	AppendLog(ctx context.Context, heroID string, entry string) error

	// SaveImage persists portrait bytes for a hero and returns the stored
	// path relative to the data directory.
	SaveImage(ctx context.Context, heroID string, data []byte) (string, error)
}
