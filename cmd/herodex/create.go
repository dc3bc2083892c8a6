package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herodex/herodex/internal/application/handlers"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Generate a new superhero",
		Long: `Generate a new superhero profile and portrait.

The profile is generated by the configured model, the portrait is downloaded
and stored locally, and the hero is appended to the catalog. A failed portrait
is a warning; the hero is still saved.`,
		RunE: runCreate,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.CreateHandler.Handle(ctx)
		if err != nil {
			fmt.Println(handlers.UserMessage(err))
			return err
		}

		hero := result.Hero
		fmt.Printf("Created %s (%s)\n\n", hero.Name, hero.ID)
		fmt.Printf("Powers:      %s\n", hero.Superpowers)
		fmt.Printf("Hometown:    %s\n", hero.Hometown)
		fmt.Printf("Personality: %s\n", hero.PersonalityTraits)
		fmt.Printf("Appearance:  %s\n", hero.Appearance)
		fmt.Printf("\n%s\n", hero.Backstory)

		if result.ImageWarning != nil {
			fmt.Printf("\nWarning: portrait could not be fetched (%v). Hero saved without an image.\n", result.ImageWarning)
		} else if hero.ImagePath != "" {
			fmt.Printf("\nPortrait saved: %s\n", hero.ImagePath)
		}

		return nil
	})
}
