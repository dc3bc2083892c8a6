package services

import (
	"context"
	"fmt"

	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/ports"
	"github.com/herodex/herodex/internal/domain/prompts"
)

// ChapterService generates serialized story chapters for heroes.
type ChapterService struct {
	store ports.HeroStore
	llm   ports.GenerationClient
}

// NewChapterService creates a new ChapterService.
func NewChapterService(store ports.HeroStore, llm ports.GenerationClient) *ChapterService {
	return &ChapterService{
		store: store,
		llm:   llm,
	}
}

// ChapterResult contains a generated chapter and its summary. Only the
// summary is persisted; the full chapter text exists only in this result and
// cannot be re-displayed later.
type ChapterResult struct {
	Chapter string
	Summary string
}

// Generate produces the next chapter for a hero, embedding the full narrative
// log as story-so-far context, then summarizes it and appends the summary to
// the hero's log.
func (s *ChapterService) Generate(ctx context.Context, heroID string) (*ChapterResult, error) {
	catalog, err := s.store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	var hero *entities.Hero
	for i := range catalog {
		if catalog[i].ID == heroID {
			hero = &catalog[i]
			break
		}
	}
	if hero == nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrHeroNotFound, heroID)
	}

	storySoFar, err := s.store.LoadLog(ctx, heroID)
	if err != nil {
		return nil, fmt.Errorf("loading narrative log: %w", err)
	}

	chapter, err := s.llm.GenerateText(ctx, prompts.ChapterMessages(hero, storySoFar))
	if err != nil {
		return nil, fmt.Errorf("generating chapter: %w", err)
	}

	summary, err := s.llm.GenerateText(ctx, prompts.SummaryMessages(chapter))
	if err != nil {
		return nil, fmt.Errorf("summarizing chapter: %w", err)
	}

	if err := s.store.AppendLog(ctx, heroID, summary); err != nil {
		return nil, fmt.Errorf("appending to narrative log: %w", err)
	}

	return &ChapterResult{
		Chapter: chapter,
		Summary: summary,
	}, nil
}
