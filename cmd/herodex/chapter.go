package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herodex/herodex/internal/application/handlers"
)

func newChapterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapter <hero-id>",
		Short: "Generate the next story chapter for a hero",
		Long: `Generate the next chapter of a hero's serialized story.

The full narrative log is replayed as story-so-far context. Only the chapter
summary is persisted; the chapter text is shown once and cannot be
re-displayed later.`,
		Args: cobra.ExactArgs(1),
		RunE: runChapter,
	}
}

func runChapter(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.ChapterHandler.Handle(ctx, args[0])
		if err != nil {
			fmt.Println(handlers.UserMessage(err))
			return err
		}

		fmt.Println(result.Chapter)
		fmt.Println()
		fmt.Println("--- Summary (saved to the narrative log) ---")
		fmt.Println(result.Summary)

		return nil
	})
}
