package mocks

import (
	"context"
	"path"

	"github.com/herodex/herodex/internal/domain/entities"
)

// HeroStore is an in-memory mock implementation of ports.HeroStore.
type HeroStore struct {
	Catalog []entities.Hero
	Logs    map[string]string
	Images  map[string][]byte

	LoadErr      error
	SaveErr      error
	AppendErr    error
	SaveImageErr error

	// SaveCalls counts SaveCatalog invocations.
	SaveCalls int
}

// NewHeroStore creates a new mock HeroStore.
func NewHeroStore() *HeroStore {
	return &HeroStore{
		Logs:   make(map[string]string),
		Images: make(map[string][]byte),
	}
}

// LoadCatalog returns the configured catalog or error.
func (m *HeroStore) LoadCatalog(_ context.Context) ([]entities.Hero, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]entities.Hero, len(m.Catalog))
	copy(out, m.Catalog)
	return out, nil
}

// SaveCatalog replaces the stored catalog.
func (m *HeroStore) SaveCatalog(_ context.Context, heroes []entities.Hero) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Catalog = make([]entities.Hero, len(heroes))
	copy(m.Catalog, heroes)
	return nil
}

// LoadLog returns the stored log text for the hero.
func (m *HeroStore) LoadLog(_ context.Context, heroID string) (string, error) {
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	return m.Logs[heroID], nil
}

// AppendLog appends an entry plus a separating blank line.
func (m *HeroStore) AppendLog(_ context.Context, heroID string, entry string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Logs[heroID] += entry + "\n\n"
	return nil
}

// SaveImage stores portrait bytes and returns a relative path.
func (m *HeroStore) SaveImage(_ context.Context, heroID string, data []byte) (string, error) {
	if m.SaveImageErr != nil {
		return "", m.SaveImageErr
	}
	m.Images[heroID] = data
	return path.Join("images", heroID+".png"), nil
}
