package main

import (
	"fmt"
	"os"

	"github.com/herodex/herodex/internal/application/handlers"
	"github.com/herodex/herodex/internal/domain/services"
	"github.com/herodex/herodex/internal/infrastructure/config"
	"github.com/herodex/herodex/internal/infrastructure/imagefetch"
	llm "github.com/herodex/herodex/internal/infrastructure/llm/openai"
	"github.com/herodex/herodex/internal/infrastructure/store/file"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and the store are internal.
type Deps struct {
	Config         *config.Config
	CreateHandler  *handlers.CreateHandler
	ChapterHandler *handlers.ChapterHandler
	RosterHandler  *handlers.RosterHandler
	ImagesDir      string
}

// withDeps loads config and builds dependencies, then calls the provided
// function. A missing API credential does not fail here: it surfaces when a
// generation action runs, so read-only commands keep working.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := file.New(cfg.DataDir(cwd))
	if err != nil {
		return fmt.Errorf("creating file store: %w", err)
	}

	llmClient := llm.NewClient(cfg.LLM)
	fetcher := imagefetch.New()

	rosterService := services.NewRosterService(store, llmClient, fetcher)
	chapterService := services.NewChapterService(store, llmClient)

	deps := &Deps{
		Config:         cfg,
		CreateHandler:  handlers.NewCreateHandler(rosterService),
		ChapterHandler: handlers.NewChapterHandler(chapterService),
		RosterHandler:  handlers.NewRosterHandler(rosterService, chapterService),
		ImagesDir:      store.ImagesDir(),
	}

	return fn(deps)
}
