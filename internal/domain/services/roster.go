package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/ports"
	"github.com/herodex/herodex/internal/domain/prompts"
)

// RosterService manages the hero catalog: creation and read access.
type RosterService struct {
	store   ports.HeroStore
	llm     ports.GenerationClient
	fetcher ports.ImageFetcher
}

// NewRosterService creates a new RosterService.
func NewRosterService(store ports.HeroStore, llm ports.GenerationClient, fetcher ports.ImageFetcher) *RosterService {
	return &RosterService{
		store:   store,
		llm:     llm,
		fetcher: fetcher,
	}
}

// CreateResult contains the outcome of a hero creation.
type CreateResult struct {
	Hero *entities.Hero
	// ImageWarning is non-nil when the portrait could not be generated or
	// fetched. The hero is still persisted, without an image path.
	ImageWarning error
}

// Create generates a new hero profile and portrait and appends the hero to
// the catalog. A malformed or failed profile generation aborts with the
// catalog untouched; a portrait failure is non-fatal.
func (s *RosterService) Create(ctx context.Context) (*CreateResult, error) {
	// Load first: a corrupt catalog must block creation, never be replaced.
	catalog, err := s.store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	profile, err := s.llm.GenerateProfile(ctx, prompts.ProfileMessages())
	if err != nil {
		return nil, fmt.Errorf("generating profile: %w", err)
	}

	hero := &entities.Hero{
		ID:          uuid.NewString(),
		HeroProfile: *profile,
		CreatedAt:   time.Now().UTC(),
	}

	result := &CreateResult{Hero: hero}
	if err := s.attachPortrait(ctx, hero); err != nil {
		result.ImageWarning = fmt.Errorf("%w: %v", entities.ErrImageFetch, err)
	}

	catalog = append(catalog, *hero)
	if err := s.store.SaveCatalog(ctx, catalog); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}

	return result, nil
}

// attachPortrait generates, downloads, and persists the hero's portrait,
// setting ImagePath on success.
func (s *RosterService) attachPortrait(ctx context.Context, hero *entities.Hero) error {
	url, err := s.llm.GenerateImage(ctx, prompts.PortraitDescription(hero))
	if err != nil {
		return fmt.Errorf("generating portrait: %v", err)
	}

	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("downloading portrait: %v", err)
	}

	path, err := s.store.SaveImage(ctx, hero.ID, data)
	if err != nil {
		return fmt.Errorf("saving portrait: %v", err)
	}

	hero.ImagePath = path
	return nil
}

// List returns the full catalog in stored order.
func (s *RosterService) List(ctx context.Context) ([]entities.Hero, error) {
	return s.store.LoadCatalog(ctx)
}

// StorySoFar returns the accumulated narrative log text for a hero, empty
// when no chapters have been generated yet.
func (s *RosterService) StorySoFar(ctx context.Context, heroID string) (string, error) {
	return s.store.LoadLog(ctx, heroID)
}

// Get returns the hero with the given id.
func (s *RosterService) Get(ctx context.Context, heroID string) (*entities.Hero, error) {
	catalog, err := s.store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	for i := range catalog {
		if catalog[i].ID == heroID {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entities.ErrHeroNotFound, heroID)
}
