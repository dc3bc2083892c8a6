package handlers

import (
	"context"
	"fmt"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/services"
)

// RosterHandler handles read-only catalog views.
type RosterHandler struct {
	roster   *services.RosterService
	chapters *services.ChapterService
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(roster *services.RosterService, chapters *services.ChapterService) *RosterHandler {
	return &RosterHandler{
		roster:   roster,
		chapters: chapters,
	}
}

// HeroDetail is the read-only detail view of a hero: the record plus the
// accumulated story-so-far text. Past chapters are only recoverable as
// summaries.
type HeroDetail struct {
	Hero       entities.Hero
	StorySoFar string
}

// HandleList returns the full catalog in stored order.
func (h *RosterHandler) HandleList(ctx context.Context) ([]entities.Hero, error) {
	return h.roster.List(ctx)
}

// HandleShow returns the detail view for a hero.
func (h *RosterHandler) HandleShow(ctx context.Context, heroID string) (*HeroDetail, error) {
	hero, err := h.roster.Get(ctx, heroID)
	if err != nil {
		return nil, err
	}

	story, err := h.roster.StorySoFar(ctx, heroID)
	if err != nil {
		return nil, fmt.Errorf("loading narrative log: %w", err)
	}

	return &HeroDetail{
		Hero:       *hero,
		StorySoFar: story,
	}, nil
}
