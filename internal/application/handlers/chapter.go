package handlers

import (
	"context"

	"github.com/herodex/herodex/internal/domain/services"
)

// ChapterHandler handles the generate-chapter action.
type ChapterHandler struct {
	chapters *services.ChapterService
}

// NewChapterHandler creates a new chapter handler.
func NewChapterHandler(chapters *services.ChapterService) *ChapterHandler {
	return &ChapterHandler{
		chapters: chapters,
	}
}

// Handle generates the next chapter for the hero and returns the chapter text
// together with the persisted summary.
func (h *ChapterHandler) Handle(ctx context.Context, heroID string) (*services.ChapterResult, error) {
	return h.chapters.Generate(ctx, heroID)
}
